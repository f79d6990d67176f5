// Package models defines the client-side data model for the Orwel policy
// tracker: the user profile, topical tags, and the read-only content records
// fetched from remote sources (legislation, committee materials, nominations,
// treaties, research reports, countries, news).
//
// All types are plain value records with no behavior. JSON field tags follow
// the primary backend's wire format; the direct PostgREST source uses
// snake_case and is mapped in internal/client/postgrest instead.
package models
