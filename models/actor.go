package models

// Actor is whoever triggered a change: a signed-in user or the system.
type Actor struct {
	ID   string
	Name string
}

func SystemActor() Actor {
	return Actor{Name: SystemUser}
}

func (a Actor) IsSystem() bool {
	return a.ID == ""
}

func (a Actor) DisplayName() string {
	if a.Name == "" {
		return SystemUser
	}
	return a.Name
}
