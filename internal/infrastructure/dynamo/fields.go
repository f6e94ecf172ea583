package dynamo

// DynamoDB attribute names shared by the identity repo and bootstrap.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldNemID = "nemid"
)
