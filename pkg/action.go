package pkg

// Status is the one-line state shown next to the board.
type Status string

const (
	StatusConnecting  Status = "Waiting for opponent"
	StatusNegotiating Status = "Choosing colors"
	StatusYourTurn    Status = "Your move"
	StatusTheirTurn   Status = "Opponent's move"
	StatusCheck       Status = "Check! Your move"
	StatusWin         Status = "Checkmate, you win"
	StatusLose        Status = "Checkmate, you lose"
	StatusDraw        Status = "Stalemate"
	StatusDisconnect  Status = "Opponent left"
)
