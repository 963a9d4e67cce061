package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/folio-labs/portfolio-backend/internal/contacts/domain"
	"github.com/folio-labs/portfolio-backend/internal/contacts/service"
	"github.com/folio-labs/portfolio-backend/internal/notify"
)

type memStore struct {
	saved []domain.Contact
}

func (m *memStore) Create(_ context.Context, c *domain.Contact) error {
	c.ID = "c1"
	m.saved = append(m.saved, *c)
	return nil
}

func (m *memStore) List(context.Context) ([]domain.Contact, error) { return m.saved, nil }

func (m *memStore) SetReplied(_ context.Context, id string, replied bool) (*domain.Contact, error) {
	for i := range m.saved {
		if m.saved[i].ID == id {
			m.saved[i].Replied = replied
			return &m.saved[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) Count(context.Context) (int64, error) { return int64(len(m.saved)), nil }

type failingMailer struct{}

func (failingMailer) Send(context.Context, notify.Message) error { return assert.AnError }

func setupRouter(t *testing.T, store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	runner := notify.NewDetached(zap.NewNop(), time.Second)
	t.Cleanup(func() { _ = runner.Wait(context.Background()) })

	r := gin.New()
	h := New(service.NewContactService(store, failingMailer{}, runner))
	h.RegisterPublic(r.Group("/api/contact"))
	h.RegisterAdmin(r.Group("/api/admin/contacts"))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSubmitContact(t *testing.T) {
	t.Run("succeeds even when mail fails", func(t *testing.T) {
		store := &memStore{}
		rr := do(setupRouter(t, store), http.MethodPost, "/api/contact",
			`{"name":"Asha","email":"asha@example.com","project_type":"SaaS","budget":"$5k","message":"Hi"}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"ok":true`)
		assert.Len(t, store.saved, 1)
	})

	cases := map[string]string{
		"missing budget": `{"name":"Asha","email":"asha@example.com","project_type":"SaaS","message":"Hi"}`,
		"bad email":      `{"name":"Asha","email":"not-an-email","project_type":"SaaS","budget":"$5k","message":"Hi"}`,
		"blank message":  `{"name":"Asha","email":"asha@example.com","project_type":"SaaS","budget":"$5k","message":"   "}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			store := &memStore{}
			rr := do(setupRouter(t, store), http.MethodPost, "/api/contact", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Empty(t, store.saved)
		})
	}
}

func TestSetReplied(t *testing.T) {
	store := &memStore{saved: []domain.Contact{{ID: "c1", Name: "Asha"}}}
	r := setupRouter(t, store)

	rr := do(r, http.MethodPatch, "/api/admin/contacts/c1", `{"replied":true}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, store.saved[0].Replied)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPatch, "/api/admin/contacts/c2", `{"replied":true}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPatch, "/api/admin/contacts/c1", `{"name":"x"}`).Code)
}
