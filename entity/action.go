package entity

// ActionType is the kind of decision an Update produces
type ActionType uint8

const (
	ActionNothing ActionType = iota
	ActionDelete
	ActionUpdate
	ActionNew
	ActionAttack
)

var actionNames = [...]string{"nothing", "delete", "update", "new", "attack"}

func (t ActionType) String() string {
	if int(t) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[t]
}

// Action is a side-effect-free decision for one entity.
// Entity is set for Update (replacement) and New (spawn); Damage for Attack.
type Action struct {
	Type   ActionType
	Entity Entity
	Damage int
}

func Nothing() Action { return Action{Type: ActionNothing} }

func Delete() Action { return Action{Type: ActionDelete} }

func UpdateTo(e Entity) Action { return Action{Type: ActionUpdate, Entity: e} }

func Spawn(e Entity) Action { return Action{Type: ActionNew, Entity: e} }

func Attack(damage int) Action { return Action{Type: ActionAttack, Damage: damage} }
