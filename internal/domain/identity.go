package domain

// Identity is a row of the externally owned NemID identity set.
// Table "user" in sqlite, keyed by nemid in DynamoDB.
// The verifier only consumes the existence of a row with a matching NemID.
type Identity struct {
	ID           string `json:"id" dynamodbav:"id"`
	CPR          string `json:"cpr" dynamodbav:"cpr"`
	NemID        string `json:"nem_id" dynamodbav:"nemid"`
	PasswordHash string `json:"-" dynamodbav:"password"`
}

type CreateIdentityRequest struct {
	CPR      string `validate:"required,numeric"`
	NemID    string `validate:"required,numeric"`
	Password string `validate:"required,min=4,max=72"`
}
