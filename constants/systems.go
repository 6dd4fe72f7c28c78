package constants

// System execution priorities, lower runs first
const (
	PriorityPlayer    = 10
	PriorityEnemy     = 20
	PriorityShoot     = 30
	PrioritySpawn     = 35
	PriorityMovement  = 40
	PriorityCollision = 50
	PriorityAnimation = 60
)
