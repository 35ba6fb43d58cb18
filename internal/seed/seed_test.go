package seed

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/recipevault/internal/model"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- Fakes ---

type fakeStore struct {
	rows   map[string]model.Category
	calls  []string
	failAt int // 1-based call number that fails, 0 never
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string]model.Category{}}
}

func (f *fakeStore) UpsertByName(_ context.Context, c *model.Category) (bool, error) {
	f.calls = append(f.calls, c.Name)
	if f.failAt > 0 && len(f.calls) == f.failAt {
		return false, f.err
	}
	if existing, ok := f.rows[c.Name]; ok {
		*c = existing
		return false, nil
	}
	f.rows[c.Name] = *c
	return true, nil
}

type countingCloser struct {
	closed int
	err    error
}

func (c *countingCloser) Close() error {
	c.closed++
	return c.err
}

type logLine struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func readLog(t *testing.T, buf *bytes.Buffer) []logLine {
	t.Helper()
	var lines []logLine
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var l logLine
		require.NoError(t, json.Unmarshal(sc.Bytes(), &l))
		lines = append(lines, l)
	}
	return lines
}

func testCatalog() []model.Category {
	return []model.Category{
		{Name: "Breakfast", Description: "Morning", Image: "/images/categories/breakfast.jpg"},
		{Name: "Soups", Description: "Warm", Image: "/images/categories/soups.jpg"},
		{Name: "Desserts", Description: "Sweet", Image: "/images/categories/desserts.jpg"},
	}
}

// --- Tests ---

func TestCatalogIsValid(t *testing.T) {
	require.NoError(t, Validate(Catalog))
	assert.NotEmpty(t, Catalog)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		catalog []model.Category
		wantErr bool
	}{
		{"valid", testCatalog(), false},
		{"empty catalog", nil, false},
		{"missing name", []model.Category{{Description: "x", Image: "/x.jpg"}}, true},
		{"missing description", []model.Category{{Name: "x", Image: "/x.jpg"}}, true},
		{"relative image", []model.Category{{Name: "x", Description: "x", Image: "x.jpg"}}, true},
		{"duplicate name", []model.Category{
			{Name: "x", Description: "a", Image: "/a.jpg"},
			{Name: "x", Description: "b", Image: "/b.jpg"},
		}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.catalog)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCatalog)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunSequentialInOrder(t *testing.T) {
	store := newFakeStore()
	var buf bytes.Buffer

	res, err := Run(context.Background(), store, testCatalog(), zerolog.New(&buf))
	require.NoError(t, err)

	assert.Equal(t, []string{"Breakfast", "Soups", "Desserts"}, store.calls)
	assert.Equal(t, Result{Created: 3}, res)

	lines := readLog(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "seeding categories", lines[0].Message)
	assert.Equal(t, "categories seeded", lines[1].Message)
}

func TestRunLogsTwoLinesAtDebugLevel(t *testing.T) {
	store := newFakeStore()
	store.rows["Soups"] = model.Category{ID: 4, Name: "Soups", Description: "Warm", Image: "/images/categories/soups.jpg"}
	var buf bytes.Buffer

	_, err := Run(context.Background(), store, testCatalog(), zerolog.New(&buf).Level(zerolog.DebugLevel))
	require.NoError(t, err)

	lines := readLog(t, &buf)
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, "info", l.Level)
	}
}

func TestRunIdempotent(t *testing.T) {
	store := newFakeStore()
	logger := zerolog.Nop()

	_, err := Run(context.Background(), store, testCatalog(), logger)
	require.NoError(t, err)
	res, err := Run(context.Background(), store, testCatalog(), logger)
	require.NoError(t, err)

	assert.Equal(t, Result{Unchanged: 3}, res)
	assert.Len(t, store.rows, 3)
}

func TestRunDoesNotMutateCatalog(t *testing.T) {
	store := newFakeStore()
	store.rows["Soups"] = model.Category{ID: 9, Name: "Soups", Description: "Custom", Image: "/custom.png"}
	catalog := testCatalog()

	_, err := Run(context.Background(), store, catalog, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, testCatalog(), catalog)
	assert.Equal(t, "Custom", store.rows["Soups"].Description)
}

func TestRunStopsAtFirstError(t *testing.T) {
	store := newFakeStore()
	store.failAt = 2
	store.err = errors.New("connection refused")
	var buf bytes.Buffer

	_, err := Run(context.Background(), store, testCatalog(), zerolog.New(&buf))

	require.Error(t, err)
	assert.ErrorIs(t, err, store.err)
	assert.Contains(t, err.Error(), "Soups")
	assert.Equal(t, []string{"Breakfast", "Soups"}, store.calls)

	lines := readLog(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "seeding categories", lines[0].Message)
}

func TestRunInvalidCatalogTouchesNothing(t *testing.T) {
	store := newFakeStore()
	catalog := append(testCatalog(), model.Category{Name: "Broken"})

	_, err := Run(context.Background(), store, catalog, zerolog.Nop())

	assert.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Empty(t, store.calls)
}

func TestMainExitStatus(t *testing.T) {
	testCases := []struct {
		name         string
		failAt       int
		closeErr     error
		openErr      error
		expectedCode int
		expectedMsg  string
		closes       int
	}{
		{name: "success", expectedCode: ExitOK, expectedMsg: "categories seeded", closes: 1},
		{name: "upsert failure", failAt: 1, expectedCode: ExitFailure, expectedMsg: "seeding failed", closes: 1},
		{name: "close failure keeps status", closeErr: errors.New("close"), expectedCode: ExitOK, expectedMsg: "close database", closes: 1},
		{name: "open failure", openErr: errors.New("dial tcp"), expectedCode: ExitFailure, expectedMsg: "database connection failed", closes: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			store.failAt = tc.failAt
			store.err = errors.New("boom")
			closer := &countingCloser{err: tc.closeErr}
			open := func(context.Context) (Store, io.Closer, error) {
				if tc.openErr != nil {
					return nil, nil, tc.openErr
				}
				return store, closer, nil
			}
			var buf bytes.Buffer

			code := Main(context.Background(), open, testCatalog(), zerolog.New(&buf))

			assert.Equal(t, tc.expectedCode, code)
			assert.Equal(t, tc.closes, closer.closed)
			lines := readLog(t, &buf)
			require.NotEmpty(t, lines)
			assert.Equal(t, tc.expectedMsg, lines[len(lines)-1].Message)
		})
	}
}
