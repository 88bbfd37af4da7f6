//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
)

func (s *IntegrationTestSuite) TestLoginLogout() {
	ctx := context.Background()

	token := s.doLogin(ctx)
	s.Equal(http.StatusOK, s.doAuthed(ctx, token, http.MethodGet, "/workflow/steps/page/1/size/5", nil))

	s.Equal(http.StatusOK, s.doAuthed(ctx, token, http.MethodGet, "/a/logout", nil))
	s.Equal(http.StatusUnauthorized, s.doAuthed(ctx, token, http.MethodGet, "/workflow/steps/page/1/size/5", nil))
}

func (s *IntegrationTestSuite) TestProtectedWithoutToken() {
	ctx := context.Background()
	for _, path := range []string{
		"/recovery/baseline",
		"/training/fitness",
		"/spotify/tracker/status",
	} {
		req := s.newRequest(ctx, http.MethodGet, path, nil)
		resp, err := s.httpClient.Do(req)
		s.Require().NoError(err)
		resp.Body.Close()
		s.Equal(http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func (s *IntegrationTestSuite) TestUnknownOrigin() {
	ctx := context.Background()
	req := s.newRequest(ctx, http.MethodGet, "/version", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Origin", "https://evil.example.com")

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusForbidden, resp.StatusCode)
}
