package cli

import (
	"context"
	"errors"
	"fmt"
	"time"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	masterPassword, err := c.getMasterPassword("Master password (min 12 chars): ")
	if err != nil {
		return err
	}

	if c.interactivePassword() {
		confirmPassword, err := c.io.ReadPassword("Confirm master password: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if masterPassword != confirmPassword {
			return errors.New("passwords do not match")
		}
	}

	c.io.Println()
	c.io.Println("Registering user...")

	result, err := c.auth.Register(ctx, username, masterPassword)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID: %s\n", result.UserID)
	c.io.Printf("Username: %s\n", result.Username)
	c.io.Println()
	c.io.Println("Please run 'gymkeeper login' to start syncing your workouts.")
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	masterPassword, err := c.getMasterPassword("Master password: ")
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	data, err := c.auth.Login(ctx, username, masterPassword)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", data.Username)
	if data.ExpiresAt > 0 {
		c.io.Printf("Access token expires: %s\n", time.Unix(data.ExpiresAt, 0).Format(time.RFC3339))
	}
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if c.identity.Current() == nil {
		c.io.Println("Not logged in.")
		return nil
	}
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Logged out. Local workouts are kept.")
	return nil
}

func (c *Cli) runStatus(_ context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()
	c.io.Printf("Storage: %s\n", c.syncer.StorageKind())

	data := c.identity.Current()
	if data == nil {
		c.io.Println("Authentication: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'gymkeeper login' to enable cloud sync.")
		return nil
	}

	c.io.Println("Authentication: Authenticated")
	c.io.Printf("Username: %s\n", data.Username)
	if data.ExpiresAt > 0 {
		expiresAt := time.Unix(data.ExpiresAt, 0)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining := expiresAt.Sub(c.now()); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Please login again.")
		}
	}

	c.io.Println()
	if pending := c.syncer.PendingWrites(); pending > 0 {
		c.io.Printf("⚠️  Pending sync: %d document(s) waiting for the remote store\n", pending)
		c.io.Println("Run 'gymkeeper sync' to synchronize.")
	} else {
		c.io.Println("✓ No pending remote writes")
	}
	return nil
}
