package domain

// Email is a fully composed outbound message. The sender identity is owned
// by the mail transport, not by the code composing the message.
type Email struct {
	ToName    string
	ToAddress string
	Subject   string
	HTML      string
}
