package delivery

// Outcome is the three-way result of processing one message.
type Outcome int

const (
	// Ack removes the message permanently.
	Ack Outcome = iota
	// Requeue sends the message through the retry hop for another attempt.
	Requeue
	// DeadLetter routes the message to the dead-letter queue. Terminal.
	DeadLetter
)

func (o Outcome) String() string {
	switch o {
	case Ack:
		return "ack"
	case Requeue:
		return "requeue"
	case DeadLetter:
		return "dead-letter"
	default:
		return "unknown"
	}
}
