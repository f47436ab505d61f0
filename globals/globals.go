package globals

import (
	"context"
)

// Context keys
type ContextKey string

// TokenKey holds the decoded identity token for the authenticated request.
const TokenKey ContextKey = "token"

// EmailKey holds the verified email of the authenticated request.
const EmailKey ContextKey = "email"

// CategoryRootID is the parent id under which storefront categories live.
// Overridable through CATEGORY_ROOT_ID.
var CategoryRootID = "68b47bf1f191cd70bd0a0ebb"

var Ctx = context.Background()
