package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "request_id" || k == "created_at"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

// seedScreening inserts a hall, a movie and a screening scheduled far in the
// future, returning the screening id.
func seedScreening(t testing.TB, app *TestApp) int {
	t.Helper()

	ctx := context.Background()

	var hallId int
	err := app.DB.QueryRow(ctx, `
		INSERT INTO halls (name, rows, seats_per_row, standard_price, vip_price, layout)
		VALUES ('Main Hall', 2, 3, 200, 300,
			'[{"row":1,"seat":1,"type":"standard"},{"row":1,"seat":2,"type":"standard"},{"row":1,"seat":3,"type":"vip"},
			  {"row":2,"seat":1,"type":"standard"},{"row":2,"seat":2,"type":"disabled"},{"row":2,"seat":3,"type":"vip"}]')
		RETURNING id
	`).Scan(&hallId)
	require.NoError(t, err)

	var movieId int
	err = app.DB.QueryRow(ctx, `
		INSERT INTO movies (title, synopsis, duration, origin)
		VALUES ('Solaris', 'A psychologist visits a space station.', 167, 'USSR')
		RETURNING id
	`).Scan(&movieId)
	require.NoError(t, err)

	var screeningId int
	err = app.DB.QueryRow(ctx, `
		INSERT INTO screenings (movie_id, hall_id, date, start_time)
		VALUES ($1, $2, '2100-01-01', '18:00')
		RETURNING id
	`, movieId, hallId).Scan(&screeningId)
	require.NoError(t, err)

	return screeningId
}

func openSales(t testing.TB, app *TestApp) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	require.NoError(t, app.Redis.Set(ctx, "sales:open", "true", 0).Err())
}
