//go:build e2e

package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cuponera-backend/internal/pkg/password"
	"cuponera-backend/tests/common/httptest"

	"github.com/stretchr/testify/suite"
)

type OTPTestSuite struct {
	SharedSuite
}

func TestOTPSuite(t *testing.T) {
	suite.Run(t, new(OTPTestSuite))
}

func (s *OTPTestSuite) activeCodes(email string) int {
	s.T().Helper()
	var n int
	err := s.DB.QueryRow(context.Background(), `SELECT count(*) FROM otps WHERE email = $1 AND active`, email).Scan(&n)
	s.Require().NoError(err)
	return n
}

// plantCode replaces the mailed code with a known one so the test can verify it.
func (s *OTPTestSuite) plantCode(email, code string, expiresAt time.Time) {
	s.T().Helper()
	hash, err := password.HashCode(code)
	s.Require().NoError(err)
	_, err = s.DB.Exec(context.Background(), `UPDATE otps SET active = false WHERE email = $1`, email)
	s.Require().NoError(err)
	_, err = s.DB.Exec(context.Background(),
		`INSERT INTO otps (email, code_hash, expires_at) VALUES ($1, $2, $3)`, email, hash, expiresAt)
	s.Require().NoError(err)
}

func (s *OTPTestSuite) TestGenerateKeepsOneActiveCode() {
	for range 3 {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/otps/generate",
			map[string]any{"email": "Ana@Correo.ec"}, "")
		s.Require().Equal(http.StatusAccepted, w.Code, w.Body.String())
	}
	s.Equal(1, s.activeCodes("ana@correo.ec"))
}

func (s *OTPTestSuite) TestVerify() {
	email := "ana@correo.ec"
	s.plantCode(email, "48213", time.Now().Add(time.Minute))

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/otps/verify",
		map[string]any{"email": email, "code": "48214"}, "")
	s.Equal(http.StatusBadRequest, w.Code, w.Body.String())

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/otps/verify",
		map[string]any{"email": email, "code": "48213"}, "")
	s.Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal(0, s.activeCodes(email))

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/otps/verify",
		map[string]any{"email": email, "code": "48213"}, "")
	s.Equal(http.StatusNotFound, w.Code, w.Body.String())
}

func (s *OTPTestSuite) TestExpiredCodeIsRetired() {
	email := "beto@correo.ec"
	s.plantCode(email, "55555", time.Now().Add(-time.Second))

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/otps/verify",
		map[string]any{"email": email, "code": "55555"}, "")
	s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
	s.Equal(0, s.activeCodes(email))
}

func (s *OTPTestSuite) TestMalformedCode() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/otps/verify",
		map[string]any{"email": "ana@correo.ec", "code": "12ab"}, "")
	s.Equal(http.StatusBadRequest, w.Code)
}
