package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kmorton/resume-tailor/internal/config"
	"github.com/kmorton/resume-tailor/internal/server"
)

var tokenUserID string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for a user",
	Long:  "Mints a signed bearer token for the given user ID, using JWT_SECRET and JWT_EXPIRATION_HOURS from the environment. Intended for operators and local API testing; the companion website issues tokens in production.",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenUserID, "user", "u", "", "User ID (UUID, required)")

	if err := tokenCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	token, err := mintToken(tokenUserID)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, token)
	return nil
}

func mintToken(rawUserID string) (string, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return "", fmt.Errorf("invalid user ID: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return "", fmt.Errorf("failed to load token signing config: %w", err)
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(userID)
	if err != nil {
		return "", fmt.Errorf("failed to mint token: %w", err)
	}
	return token, nil
}
