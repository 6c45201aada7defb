//go:build integration

package jwt_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jeremyhahn/go-authcodes/pkg/jwt"
)

func TestIntegration_JWT_IssueVerify(t *testing.T) {
	// Complete workflow: issue → raw signature check → claims validation
	const secret = "integration-signing-secret"

	for _, kind := range []string{jwt.KindAccess, jwt.KindRefresh} {
		t.Run(kind, func(t *testing.T) {
			token, err := jwt.CreateToken("user-1", secret, time.Minute, kind)
			if err != nil {
				t.Fatalf("Failed to create token: %v", err)
			}

			result, err := jwt.Verify(token, secret)
			if err != nil {
				t.Fatalf("Raw verify failed: %v", err)
			}
			if !result.Valid {
				t.Fatal("Raw verifier rejected issued token")
			}
			if len(result.Payload) == 0 {
				t.Error("Expected decoded payload")
			}

			claims, err := jwt.VerifyToken(token, secret)
			if err != nil {
				t.Fatalf("Claims verify failed: %v", err)
			}
			if claims.Subject != "user-1" || claims.Kind != kind {
				t.Errorf("Unexpected claims: %+v", claims)
			}
		})
	}
}

func TestIntegration_JWT_CrossSecret(t *testing.T) {
	// Tokens from one tenant secret must not verify under another
	tokenA, err := jwt.CreateToken("user-a", "secret-a", time.Minute, jwt.KindAccess)
	if err != nil {
		t.Fatalf("Failed to create token: %v", err)
	}

	result, err := jwt.Verify(tokenA, "secret-b")
	if err != nil {
		t.Fatalf("Raw verify failed: %v", err)
	}
	if result.Valid {
		t.Error("Token verified under wrong secret")
	}
	if result.Payload != nil {
		t.Error("Payload exposed under wrong secret")
	}
}

func TestIntegration_JWT_Concurrent(t *testing.T) {
	// Verify is a pure function and must be safe to call concurrently
	const secret = "integration-signing-secret"

	token, err := jwt.CreateToken("user-1", secret, time.Minute, jwt.KindAccess)
	if err != nil {
		t.Fatalf("Failed to create token: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			result, err := jwt.Verify(token, secret)
			if err != nil {
				errs <- fmt.Errorf("goroutine %d: %w", n, err)
				return
			}
			if !result.Valid {
				errs <- fmt.Errorf("goroutine %d: token rejected", n)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
