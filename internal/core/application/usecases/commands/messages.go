package commands

// Replies shared by the order commands.
const (
	MsgClarifyItems  = "Sorry I didn't understand. Can you please specify food items and quantities clearly?"
	MsgOrderNotFound = "I'm having a trouble finding your order. Sorry! Can you place a new order please?"
	MsgBackendError  = "Sorry, I couldn't process your order due to a backend error. Please place a new order again"
	MsgOrderCleared  = "Okay, I have cleared your ongoing order. What would you like to order?"

	msgSoFar       = "So far you have: %s. Do you need anything else?"
	msgRemoved     = "Removed %s from your order!"
	msgNotInOrder  = "Your current order does not have %s"
	msgOrderEmpty  = "Your order is empty!"
	msgLeftInOrder = "Here is what is left in your order: %s"
	msgPlaced      = "Awesome. We have placed your order. Here is your order id # %s. " +
		"Your order total is %s which you can pay at the time of delivery!"
	msgPlacedNoSum = "Awesome. We have placed your order. Here is your order id # %s. " +
		"You can pay at the time of delivery!"
)
