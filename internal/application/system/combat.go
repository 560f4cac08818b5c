package system

import "github.com/younwookim/beatemup/internal/domain/entity"

// ResolveInteraction applies one tick of melee between the player and an enemy.
// Nothing happens unless the two overlap.
func (a *Arena) ResolveInteraction(player *entity.Player, enemy *entity.Enemy, overlapping bool) {
	if !overlapping {
		return
	}

	switch player.State {
	case entity.StateWalking:
		a.enemyAttack(player, enemy)
	case entity.StateAttacking:
		// The enemy either dodges or trades blows
		if a.dice.Intn(2) == 0 {
			enemy.TriggerDuck()
		} else {
			a.enemyAttack(player, enemy)
		}
	}

	if player.AttackLanding() && enemy.State != entity.StateDucking && enemy.Facing != player.Facing {
		enemy.ApplyHealth(entity.HealthSubtract, player.AttackDamage)
		if a.OnHit != nil {
			a.OnHit(enemy.Body())
		}
	}
}

func (a *Arena) enemyAttack(player *entity.Player, enemy *entity.Enemy) {
	enemy.TriggerAttack()
	if enemy.AttackLanding() {
		player.ApplyHealth(entity.HealthSubtract, enemy.AttackDamage)
		if a.OnHit != nil {
			a.OnHit(player.Body())
		}
	}
}
