package auth

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// InitializeFirebase initializes the Firebase Admin SDK and returns an Auth client
func InitializeFirebase(ctx context.Context, credentialsPath string) (*fbauth.Client, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	return authClient, nil
}

// IDTokenVerifier is the part of *fbauth.Client the Firebase verifier needs.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier accepts a Firebase ID token whose email claim matches the
// configured admin email.
type FirebaseVerifier struct {
	client     IDTokenVerifier
	adminEmail string
}

func NewFirebaseVerifier(client IDTokenVerifier, adminEmail string) *FirebaseVerifier {
	return &FirebaseVerifier{client: client, adminEmail: strings.ToLower(strings.TrimSpace(adminEmail))}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, c Credentials) (Identity, error) {
	if c.IDToken == "" {
		return Identity{}, ErrInvalidCredentials
	}
	tok, err := v.client.VerifyIDToken(ctx, c.IDToken)
	if err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	email, _ := tok.Claims["email"].(string)
	if email == "" || strings.ToLower(email) != v.adminEmail {
		return Identity{}, ErrInvalidCredentials
	}
	return Identity{Subject: v.adminEmail}, nil
}
