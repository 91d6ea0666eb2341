package main

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/BiblioCore/BiblioCore-Backend/src/db"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/BiblioCore/BiblioCore-Backend/src/seed"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
	"gorm.io/gorm"
)

func connect() *gorm.DB {
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return database
}

func newInitAdminCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "init-admin",
		Short: "Create the first staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			database := connect()
			if err := database.AutoMigrate(&models.StaffModel{}); err != nil {
				return fmt.Errorf("failed to migrate staff model: %w", err)
			}

			var existing models.StaffModel
			if err := database.Where("username = ?", username).First(&existing).Error; err == nil {
				fmt.Printf("Staff %q already exists\n", username)
				return nil
			}

			fmt.Print("Password: ")
			password, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			if len(password) == 0 {
				return fmt.Errorf("password cannot be empty")
			}

			hashedPassword, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			staff := models.StaffModel{
				Username: username,
				Password: string(hashedPassword),
				Fullname: username,
				Role:     "admin",
			}
			if err := database.Create(&staff).Error; err != nil {
				return fmt.Errorf("failed to create staff: %w", err)
			}
			fmt.Printf("Staff %q created\n", username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "admin", "username of the admin account")
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create default policy settings and the admin account",
		Run: func(cmd *cobra.Command, args []string) {
			database := connect()
			if err := database.AutoMigrate(&models.StaffModel{}, &models.SystemSettingModel{}); err != nil {
				log.Fatalf("failed to migrate models: %v", err)
			}
			seed.Seed(database)
		},
	}
}

func newSetSettingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-setting <name> <value>",
		Short: "Create or update a policy setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			database := connect()
			if err := database.AutoMigrate(&models.SystemSettingModel{}); err != nil {
				return fmt.Errorf("failed to migrate settings model: %w", err)
			}

			setting, err := services.NewSettingService(database).SetSetting(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Setting %q = %q\n", setting.SettingName, setting.SettingValue)
			return nil
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:   "libadmin",
		Short: "Administrative tasks for the library backend",
	}
	root.AddCommand(newInitAdminCmd(), newSeedCmd(), newSetSettingCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
