package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath prefixes every versioned api route.
	APIPath = "/api/v1"

	// ErrNilRouterCfgMsg is used if router or cfg var pointer is nil.
	ErrNilRouterCfgMsg = "router or cfg is nil"
)
