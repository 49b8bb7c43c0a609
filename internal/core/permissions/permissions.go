// Package permissions names the permission tokens the backend hands out
package permissions

// Global permission tokens found in the info blob
const (
	CreateUserAccount   = "createUserAccount"
	EnableImport        = "enableImport"
	EnableBlog          = "enableBlog"
	EnableSocialLogin   = "enableSocialLogin"
	EnableStatistics    = "enableStatistics"
	EnableSubscription  = "enableSubscription"
	EnableSystemMessage = "enableSystemMessage"
)

// Without returns a new slice holding every token of in except drop.
// in is never modified
func Without(in []string, drop string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p != drop {
			out = append(out, p)
		}
	}
	return out
}

// Has reports whether token is present in in
func Has(in []string, token string) bool {
	for _, p := range in {
		if p == token {
			return true
		}
	}
	return false
}
