package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/portfolio-backend/internal/casestudies/domain"
	"github.com/folio-labs/portfolio-backend/internal/casestudies/service"
)

type memStore struct {
	items   []domain.CaseStudy
	listErr error
}

func (m *memStore) List(context.Context) ([]domain.CaseStudy, error) { return m.items, m.listErr }

func (m *memStore) Create(_ context.Context, cs *domain.CaseStudy) error {
	cs.ID = "cs1"
	m.items = append(m.items, *cs)
	return nil
}

func (m *memStore) Update(context.Context, string, domain.CaseStudy) (*domain.CaseStudy, error) {
	return nil, domain.ErrNotFound
}

func (m *memStore) Delete(context.Context, string) error { return nil }

func setupRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(service.NewCaseStudyService(store))
	h.RegisterPublic(r.Group("/api/case-studies"))
	h.RegisterAdmin(r.Group("/api/admin/case-studies"))
	return r
}

func TestCreateCaseStudy(t *testing.T) {
	store := &memStore{}
	r := setupRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/case-studies",
		strings.NewReader(`{"title":"Hiring","client_name":"Acme","description":"d","roi":"3x","metrics":["a"]}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, store.items, 1)
	assert.Equal(t, []string{"a"}, store.items[0].Metrics)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/case-studies",
		strings.NewReader(`{"title":"Hiring","client_name":"Acme","description":"d"}`))
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListCaseStudies_StoreFailure(t *testing.T) {
	r := setupRouter(&memStore{listErr: errors.New("relation \"case_studies\" does not exist")})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/case-studies", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "relation")
}
