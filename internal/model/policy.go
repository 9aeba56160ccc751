package model

// RoutePolicy is a coarse-grained permission declared on a route. The
// policy middleware only requires that an authenticated identity is
// present; per-policy membership is an extension point.
type RoutePolicy string

const (
	PolicyUsersCreate        RoutePolicy = "users:create"
	PolicyUsersUpdate        RoutePolicy = "users:update"
	PolicyUsersDelete        RoutePolicy = "users:delete"
	PolicyUsersUploadPicture RoutePolicy = "users:upload-picture"
	PolicyMessagesCreate     RoutePolicy = "messages:create"
	PolicyMessagesUpdate     RoutePolicy = "messages:update"
	PolicyMessagesDelete     RoutePolicy = "messages:delete"
)
