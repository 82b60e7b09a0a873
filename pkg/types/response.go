package types

// MessageBody is the single body shape for mutation results and errors.
type MessageBody struct {
	Message string `json:"message"`
}
