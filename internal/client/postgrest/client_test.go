package postgrest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orwel/orwel-cli/internal/logging"
	"github.com/orwel/orwel-cli/internal/shared"
)

// fakeSource is a scriptable PostgREST stand-in keyed by table name.
type fakeSource struct {
	t *testing.T

	// responses maps table name to the JSON array served for it.
	responses map[string]string
	// requests records the query string seen per table, in call order.
	requests []recordedRequest
}

type recordedRequest struct {
	table string
	query map[string]string
}

func (f *fakeSource) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(f.t, "anon-key", r.Header.Get("apikey"))

		table := r.URL.Path[len("/rest/v1/"):]
		q := map[string]string{}
		for k, v := range r.URL.Query() {
			q[k] = v[0]
		}
		f.requests = append(f.requests, recordedRequest{table: table, query: q})

		body, ok := f.responses[table]
		if !ok {
			body = "[]"
		}
		_, _ = w.Write([]byte(body))
	})
}

func (f *fakeSource) tablesQueried() []string {
	var out []string
	for _, r := range f.requests {
		out = append(out, r.table)
	}
	return out
}

func newTestSource(t *testing.T, responses map[string]string) (*fakeSource, *Client) {
	t.Helper()
	f := &fakeSource{t: t, responses: responses}
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return f, New(srv.URL, "anon-key", time.Second, 5*time.Second, logging.Discard())
}

func TestNotConfigured(t *testing.T) {
	c := New("", "", time.Second, time.Second, logging.Discard())
	require.False(t, c.Configured())

	_, err := c.LegislationByTags(context.Background(), []string{"oil"})
	assert.ErrorIs(t, err, shared.ErrNotConfigured)

	_, err = c.Login(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, shared.ErrNotConfigured)
}

func TestLegislationByTags(t *testing.T) {
	f, c := newTestSource(t, map[string]string{
		"tag":         `[{"tag_id":1},{"tag_id":5}]`,
		"legislation": `[{"leg_id":9,"title":"Energy Act","date_introduced":"2024-03-01","tag_id":1}]`,
	})

	got, err := c.LegislationByTags(context.Background(), []string{"oil", "gold"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(9), got[0].LegID)
	assert.Equal(t, "Energy Act", got[0].Title)
	assert.Equal(t, 2024, got[0].DateIntroduced.Year())

	require.Equal(t, []string{"tag", "legislation"}, f.tablesQueried())

	tagQ := f.requests[0].query
	assert.Equal(t, `in.("oil","gold")`, tagQ["tag_name"])
	assert.Equal(t, "tag_id", tagQ["select"])

	legQ := f.requests[1].query
	assert.Equal(t, "in.(1,5)", legQ["tag_id"])
	assert.Equal(t, "date_introduced.desc", legQ["order"])
	assert.Equal(t, "20", legQ["limit"])
	assert.Equal(t, "*", legQ["select"])
}

func TestUnknownTagsShortCircuit(t *testing.T) {
	f, c := newTestSource(t, map[string]string{"tag": `[]`})

	got, err := c.LegislationByTags(context.Background(), []string{"nosuchtag"})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	// No unfiltered content query may follow an empty tag resolution.
	assert.Equal(t, []string{"tag"}, f.tablesQueried())
}

func TestNominationsOrder(t *testing.T) {
	f, c := newTestSource(t, map[string]string{
		"tag":         `[{"tag_id":2}]`,
		"nominations": `[{"nom_id":4,"position_title":"Secretary","date_received":"2024-05-02"}]`,
	})

	got, err := c.NominationsByTags(context.Background(), []string{"gold"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Secretary", got[0].PositionTitle)
	assert.Equal(t, "date_received.desc", f.requests[1].query["order"])
}

func TestHearings_CommitteePath(t *testing.T) {
	f, c := newTestSource(t, map[string]string{
		"tag":                 `[{"tag_id":1}]`,
		"committees":          `[{"com_id":11,"name":"Banking"},{"com_id":12,"name":"Energy"}]`,
		"committee_materials": `[{"mat_id":7,"com_id":11,"title":"Oversight hearing","event_date":"2024-06-10"}]`,
	})

	got, err := c.HearingsByTags(context.Background(), []string{"oil"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Oversight hearing", got[0].Title)

	require.Equal(t, []string{"tag", "committees", "committee_materials"}, f.tablesQueried())
	matQ := f.requests[2].query
	assert.Equal(t, "in.(11,12)", matQ["com_id"])
	assert.Equal(t, "event_date.desc", matQ["order"])
}

func TestHearings_LegislationFallback(t *testing.T) {
	f, c := newTestSource(t, map[string]string{
		"tag":                 `[{"tag_id":1}]`,
		"committees":          `[]`,
		"legislation":         `[{"leg_id":9,"title":"Energy Act"}]`,
		"committee_materials": `[{"mat_id":8,"leg_id":9,"title":"Markup session"}]`,
	})

	got, err := c.HearingsByTags(context.Background(), []string{"oil"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Markup session", got[0].Title)

	require.Equal(t, []string{"tag", "committees", "tag", "legislation", "committee_materials"}, f.tablesQueried())
	assert.Equal(t, "in.(9)", f.requests[4].query["leg_id"])
}

func TestHearings_CommitteeHitSuppressesLegislationPath(t *testing.T) {
	// A tagged committee with zero materials still resolves the query; the
	// legislation pivot must not run.
	f, c := newTestSource(t, map[string]string{
		"tag":                 `[{"tag_id":1}]`,
		"committees":          `[{"com_id":11,"name":"Banking"}]`,
		"committee_materials": `[]`,
		"legislation":         `[{"leg_id":9,"title":"Energy Act"}]`,
	})

	got, err := c.HearingsByTags(context.Background(), []string{"oil"})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, []string{"tag", "committees", "committee_materials"}, f.tablesQueried())
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["password"] != "pw" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"sb-token"}`))
	}))
	t.Cleanup(srv.Close)
	c := New(srv.URL, "anon-key", time.Second, 5*time.Second, logging.Discard())

	resp, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "sb-token", resp.BearerToken())
	assert.Equal(t, "sb-token", c.bearer(), "login must install the user token")

	_, err = c.Login(context.Background(), "a@b.c", "wrong")
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestTransportErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(srv.URL, "anon-key", time.Second, time.Second, logging.Discard())

	_, err := c.CommitteesByTags(context.Background(), []string{"oil"})
	assert.ErrorIs(t, err, shared.ErrUnavailable)
}
