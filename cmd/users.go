package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drillquiz/drillquiz/internal/creds"
	"github.com/drillquiz/drillquiz/internal/store"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage employee accounts",
}

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an employee account",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		fullName, _ := cmd.Flags().GetString("full-name")
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		if fullName == "" || username == "" || password == "" {
			return fmt.Errorf("--full-name, --username, and --password are required")
		}

		err = st.Users().Create(cmd.Context(), &creds.User{
			FullName: fullName,
			Username: username,
			Password: password,
			Status:   creds.StatusActive,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created user %q.\n", creds.Normalize(username))
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employee accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		users, err := st.Users().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}
		for _, u := range users {
			fmt.Printf("%-16s %-24s %s\n", u.Username, u.FullName, u.Status)
		}
		return nil
	},
}

var usersResetCmd = &cobra.Command{
	Use:   "reset <username>",
	Short: "Reactivate an expired account for a new training cycle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Users().SetStatus(cmd.Context(), args[0], creds.StatusActive); err != nil {
			return err
		}
		fmt.Printf("Reactivated user %q.\n", creds.Normalize(args[0]))
		return nil
	},
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func init() {
	usersAddCmd.Flags().String("full-name", "", "Employee full name")
	usersAddCmd.Flags().String("username", "", "Employee ID used to sign in")
	usersAddCmd.Flags().String("password", "", "Account password")

	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersResetCmd)
}
