package entity

// Credentials is the token set obtained from the OAuth callback together
// with the realm (company) the tokens are scoped to.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	RealmID      string
}

// Empty reports whether the set is unusable for API calls. Both the access
// token and the realm are needed to address a company endpoint.
func (c Credentials) Empty() bool {
	return c.AccessToken == "" || c.RealmID == ""
}
