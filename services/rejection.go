package services

// Rejection names the outcome of an action's validation chain. Rejections
// are not errors: the caller receives no result and no distinct error code,
// only a logged reason. The enum exists so logs and tests can name the
// reason a run produced nothing.
type Rejection int

const (
	Accepted Rejection = iota
	RejectionNoEvent
	RejectionNoCartID
	RejectionNoEmail
	RejectionNoCart
	RejectionEmptyCart
	RejectionAlreadyOrdered
	RejectionInactiveCart
)

func (r Rejection) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectionNoEvent:
		return "no event provided"
	case RejectionNoCartID:
		return "could not find cart id in event"
	case RejectionNoEmail:
		return "could not find email in event"
	case RejectionNoCart:
		return "no cart or email provided"
	case RejectionEmptyCart:
		return "no products in cart"
	case RejectionAlreadyOrdered:
		return "order was already created"
	case RejectionInactiveCart:
		return "cart is no longer active"
	default:
		return "unknown"
	}
}
