package utils

import (
	"context"
	"fmt"

	"eventra/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FirebaseMessaging initializes the Firebase App and returns its Messaging client.
func FirebaseMessaging(ctx context.Context) (*messaging.Client, error) {
	path := config.AppConfig.FirebaseCredentialsFile
	if path == "" {
		return nil, fmt.Errorf("firebase: FIREBASE_CREDENTIALS_FILE not set")
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(path))
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Messaging client: %w", err)
	}
	return client, nil
}
