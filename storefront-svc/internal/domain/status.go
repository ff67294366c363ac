package domain

type OrderStatus string

const (
	StatusNotYetPlaced       OrderStatus = "Not yet placed"
	StatusAwaitingAcceptance OrderStatus = "Awaiting acceptance"
	StatusAccepted           OrderStatus = "Accepted"
	StatusDeclined           OrderStatus = "Declined"
	StatusPickedUp           OrderStatus = "Picked up"
)

var transitions = map[OrderStatus][]OrderStatus{
	StatusNotYetPlaced:       {StatusAwaitingAcceptance},
	StatusAwaitingAcceptance: {StatusAccepted, StatusDeclined, StatusNotYetPlaced},
	StatusAccepted:           {StatusPickedUp},
	StatusDeclined:           {StatusAwaitingAcceptance},
	StatusPickedUp:           {StatusAwaitingAcceptance},
}

func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Editable reports whether line items may be added, edited or removed.
func (s OrderStatus) Editable() bool {
	return s == StatusNotYetPlaced || s == StatusDeclined || s == StatusPickedUp
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleRestaurant Role = "restaurant"
	RoleLoggedOut  Role = "logged_out"
)
