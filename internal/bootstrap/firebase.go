package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"github.com/InternFinder-SIH/internfinder-backend/config"
)

// FirebaseClients bundles the Firebase Admin SDK clients the service uses:
// Firestore for application records, the Realtime Database for the internship
// catalog, and Auth for Google sign-in verification.
type FirebaseClients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
	RTDB      *db.Client
}

// InitFirebase initializes the Firebase Admin SDK. The Realtime Database
// client is only created when a database URL is configured.
func InitFirebase(ctx context.Context, cfg *config.FirebaseConfig) (*FirebaseClients, error) {
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	clients := &FirebaseClients{
		Auth:      authClient,
		Firestore: fsClient,
	}

	if cfg.DatabaseURL != "" {
		rtdb, err := app.Database(ctx)
		if err != nil {
			fsClient.Close()
			return nil, fmt.Errorf("failed to get Realtime Database client: %w", err)
		}
		clients.RTDB = rtdb
	}

	return clients, nil
}

// Close releases the underlying connections.
func (f *FirebaseClients) Close() {
	if f != nil && f.Firestore != nil {
		f.Firestore.Close()
	}
}
