package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-address-book/internal/adapter"
	"github.com/MKhiriev/go-address-book/models"
)

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "address-book",
		Short:         "Manage the address book from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.listCommand(),
		a.getCommand(),
		a.addCommand(),
		a.updateCommand(),
		a.deleteCommand(),
		a.searchCommand(),
		a.versionCommand(),
	)

	return root
}

func (a *App) loginCommand() *cobra.Command {
	var copyToken bool

	cmd := &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and store the session token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.adapter.Login(cmd.Context(), models.Credentials{Username: args[0], Password: args[1]})
			if errors.Is(err, adapter.ErrUnauthorized) {
				return fmt.Errorf("%w: %w", ErrLoginRejected, err)
			}
			if err != nil {
				return err
			}
			if err = a.session.Save(resp.Token); err != nil {
				return err
			}

			a.println(fmt.Sprintf("logged in as %s", resp.Username))
			if copyToken {
				if err = a.copyToClipboard(resp.Token); err != nil {
					return fmt.Errorf("copy token to clipboard: %w", err)
				}
				a.println(helpStyle.Render("token copied to clipboard"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyToken, "copy", false, "copy the session token to the clipboard")

	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.Clear(); err != nil {
				return err
			}
			a.println("logged out")
			return nil
		},
	}
}

func (a *App) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restoreSession(); err != nil {
				return err
			}

			contacts, err := a.adapter.ListContacts(cmd.Context())
			if err != nil {
				return err
			}

			a.println(renderContacts(contacts))
			return nil
		},
	}
}

func (a *App) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restoreSession(); err != nil {
				return err
			}

			contact, err := a.adapter.GetContact(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			a.println(renderContact(contact))
			return nil
		},
	}
}

// contactFlags binds the flags shared by add and update.
type contactFlags struct {
	name    string
	emails  []string
	phone   string
	address string
}

func (f *contactFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "contact name (required)")
	cmd.Flags().StringArrayVar(&f.emails, "email", nil, "email address, repeat for several; the first is primary")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&f.address, "address", "", "postal address")
}

func (f *contactFlags) request() models.ContactRequest {
	return models.ContactRequest{
		Name:    f.name,
		Emails:  f.emails,
		Phone:   f.phone,
		Address: f.address,
	}
}

func (a *App) addCommand() *cobra.Command {
	var flags contactFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restoreSession(); err != nil {
				return err
			}

			contact, err := a.adapter.CreateContact(cmd.Context(), flags.request())
			if err != nil {
				return err
			}

			a.println(renderContact(contact))
			return nil
		},
	}
	flags.bind(cmd)

	return cmd
}

func (a *App) updateCommand() *cobra.Command {
	var flags contactFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Overwrite a contact; emails not given are removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restoreSession(); err != nil {
				return err
			}

			contact, err := a.adapter.UpdateContact(cmd.Context(), args[0], flags.request())
			if err != nil {
				return err
			}

			a.println(renderContact(contact))
			return nil
		},
	}
	flags.bind(cmd)

	return cmd
}

func (a *App) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact and all of its emails",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restoreSession(); err != nil {
				return err
			}

			if err := a.adapter.DeleteContact(cmd.Context(), args[0]); err != nil {
				return err
			}

			a.println(fmt.Sprintf("contact %s deleted", args[0]))
			return nil
		},
	}
}

func (a *App) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find contacts by name, email, phone or address",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return ErrEmptyQuery
			}
			if err := a.restoreSession(); err != nil {
				return err
			}

			contacts, err := a.adapter.SearchContacts(cmd.Context(), query)
			if err != nil {
				return err
			}

			a.println(renderContacts(contacts))
			return nil
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return err
			}

			a.println(version)
			return nil
		},
	}
}
