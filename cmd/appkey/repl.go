package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/appkey-demo/appkey-go/internal/models"
	"github.com/appkey-demo/appkey-go/internal/orchestrator"
	"github.com/appkey-demo/appkey-go/internal/session"
	"github.com/appkey-demo/appkey-go/internal/social"
)

var errQuit = errors.New("quit")

// repl reads commands from stdin and drives the orchestrator, playing
// the part of the demo app's screens.
type repl struct {
	orch    *orchestrator.Orchestrator
	app     *models.Application
	scanner *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
}

func newREPL(orch *orchestrator.Orchestrator, app *models.Application, in io.Reader, out io.Writer, logger *slog.Logger) *repl {
	return &repl{
		orch:    orch,
		app:     app,
		scanner: bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Run loops until quit, EOF, or context cancellation.
func (r *repl) Run(ctx context.Context) error {
	fmt.Fprintf(r.out, "%s — type 'help' for commands\n", r.app.Name)

	for {
		fmt.Fprintf(r.out, "appkey(%s)> ", r.orch.Session().State())

		if !r.scanner.Scan() {
			return r.scanner.Err()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fields := strings.Fields(r.scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if err := r.dispatch(ctx, fields[0], fields[1:]); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}

			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
}

func (r *repl) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		r.printHelp()
		return nil
	case "app":
		return r.cmdApp()
	case "signup":
		return r.cmdSignup(ctx, args)
	case "code":
		return r.cmdCode(ctx, args)
	case "login":
		return r.cmdLogin(ctx, args)
	case "anon":
		return r.cmdAnon(ctx)
	case "social":
		return r.cmdSocial(ctx, args)
	case "whoami":
		return r.cmdWhoami()
	case "username":
		return r.cmdUsername(ctx, args)
	case "locale":
		return r.cmdLocale(ctx, args)
	case "profile":
		return r.cmdProfile(ctx, args)
	case "passkeys":
		return r.cmdPasskeys(ctx)
	case "addkey":
		return r.cmdAddKey(ctx)
	case "renamekey":
		return r.cmdRenameKey(ctx, args)
	case "removekey":
		return r.cmdRemoveKey(ctx, args)
	case "verify":
		return r.cmdVerify(ctx)
	case "delete":
		return r.cmdDelete(ctx)
	case "logout":
		return r.orch.Logout()
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
}

func (r *repl) printHelp() {
	fmt.Fprint(r.out, `commands:
  app                          show tenant configuration
  signup <handle> <name...>    register a new account with a passkey
  code <code>                  enter the one-time signup code
  login <handle>               log in with a passkey
  anon                         log in anonymously
  social <provider> <token> [email] [name...]
                               log in with apple or google
  whoami                       show the current account
  username <name>              check and claim a username
  locale <tag>                 change the account locale
  profile <first> <last>       update display names
  passkeys                     list registered passkeys
  addkey                       add a passkey (re-verifies first)
  renamekey <id> <name...>     rename a passkey (re-verifies first)
  removekey <id>               remove a passkey (re-verifies first)
  verify                       re-authenticate without a follow-up
  delete                       delete the account (re-verifies first)
  logout                       log out locally
  quit                         exit
`)
}

func (r *repl) cmdApp() error {
	fmt.Fprintf(r.out, "app: %s (%s)\n", r.app.Name, r.app.AppID)
	fmt.Fprintf(r.out, "  handle type:     %s\n", r.app.HandleType)
	fmt.Fprintf(r.out, "  anonymous login: %t\n", r.app.AnonymousLoginEnabled)
	fmt.Fprintf(r.out, "  usernames:       %t\n", r.app.UserNamesEnabled)
	fmt.Fprintf(r.out, "  apple login:     %t\n", r.app.AppleLoginEnabled)
	fmt.Fprintf(r.out, "  google login:    %t\n", r.app.GoogleLoginEnabled)

	if len(r.app.Locales) > 0 {
		fmt.Fprintf(r.out, "  locales:         %s\n", strings.Join(r.app.Locales, ", "))
	}

	return nil
}

func (r *repl) cmdSignup(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: signup <handle> <display name>")
	}

	handle := args[0]
	displayName := strings.Join(args[1:], " ")

	c, err := r.orch.StartSignup(ctx, handle, displayName)
	if err != nil {
		return err
	}

	if err := r.orch.CompleteSignup(ctx, c); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "passkey registered; check %s for the code and run 'code <code>'\n", handle)

	return nil
}

func (r *repl) cmdCode(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: code <code>")
	}

	if err := r.orch.ConfirmSignupCode(ctx, args[0]); err != nil {
		return err
	}

	r.printUser()

	return nil
}

func (r *repl) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: login <handle>")
	}

	c, err := r.orch.StartLogin(ctx, args[0])
	if err != nil {
		return err
	}

	if c.Kind() == orchestrator.KindResetPasskey {
		fmt.Fprintln(r.out, "account has no usable passkey; registering a replacement")
	}

	if err := r.orch.CompleteLogin(ctx, c); err != nil {
		return err
	}

	r.printUser()

	return nil
}

func (r *repl) cmdAnon(ctx context.Context) error {
	c, err := r.orch.StartLoginAnonymous(ctx)
	if err != nil {
		return err
	}

	if err := r.orch.CompleteLoginAnonymous(ctx, c); err != nil {
		return err
	}

	r.printUser()

	return nil
}

func (r *repl) cmdSocial(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: social <apple|google> <id-token> [email] [display name]")
	}

	name := args[0]
	if name != models.ProviderApple && name != models.ProviderGoogle {
		return fmt.Errorf("unknown provider %q", name)
	}

	provider := &social.StaticProvider{
		ProviderName: name,
		Identity:     social.Identity{Token: args[1]},
	}

	if len(args) > 2 {
		provider.Identity.Email = args[2]
	}

	if len(args) > 3 {
		provider.Identity.DisplayName = strings.Join(args[3:], " ")
	}

	if err := r.orch.SocialLogin(ctx, provider); err != nil {
		return err
	}

	r.printUser()

	return nil
}

func (r *repl) cmdWhoami() error {
	user := r.orch.Session().User()
	if user == nil {
		fmt.Fprintln(r.out, "not logged in")
		return nil
	}

	fmt.Fprintf(r.out, "%s (%s)\n", user.DisplayName, user.Handle)
	fmt.Fprintf(r.out, "  id:       %s\n", user.AppUserID)
	fmt.Fprintf(r.out, "  provider: %s\n", user.LoginProvider)

	if user.UserName != "" {
		fmt.Fprintf(r.out, "  username: %s\n", user.UserName)
	}

	if user.Locale != "" {
		fmt.Fprintf(r.out, "  locale:   %s\n", user.Locale)
	}

	return nil
}

func (r *repl) cmdUsername(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: username <name>")
	}

	available, err := r.orch.UserNameAvailable(ctx, args[0])
	if err != nil {
		return err
	}

	if !available {
		fmt.Fprintf(r.out, "%q is taken\n", args[0])
		return nil
	}

	if err := r.orch.SetUsername(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "username set to %q\n", args[0])

	return nil
}

func (r *repl) cmdLocale(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: locale <tag>")
	}

	if err := r.orch.SetLocale(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "locale set to %q\n", args[0])

	return nil
}

func (r *repl) cmdProfile(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: profile <first> <last>")
	}

	if err := r.orch.UpdateProfile(ctx, args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintln(r.out, "profile updated")

	return nil
}

func (r *repl) cmdPasskeys(ctx context.Context) error {
	if err := r.orch.RefreshUser(ctx); err != nil {
		return err
	}

	keys := r.orch.Passkeys()
	if len(keys) == 0 {
		fmt.Fprintln(r.out, "no passkeys")
		return nil
	}

	for _, k := range keys {
		fmt.Fprintf(r.out, "  %s  %s", k.ID, k.Name)

		if !k.LastUsed.IsZero() {
			fmt.Fprintf(r.out, "  (last used %s)", k.LastUsed.Format("2006-01-02"))
		}

		fmt.Fprintln(r.out)
	}

	return nil
}

func (r *repl) cmdAddKey(ctx context.Context) error {
	return r.runVerified(ctx, orchestrator.Action{Kind: orchestrator.ActionAddPasskey}, "passkey added")
}

func (r *repl) cmdRenameKey(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: renamekey <id> <name>")
	}

	action := orchestrator.Action{
		Kind:    orchestrator.ActionRenamePasskey,
		KeyID:   args[0],
		KeyName: strings.Join(args[1:], " "),
	}

	return r.runVerified(ctx, action, "passkey renamed")
}

func (r *repl) cmdRemoveKey(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: removekey <id>")
	}

	action := orchestrator.Action{Kind: orchestrator.ActionRemovePasskey, KeyID: args[0]}

	return r.runVerified(ctx, action, "passkey removed")
}

func (r *repl) cmdVerify(ctx context.Context) error {
	return r.runVerified(ctx, orchestrator.Action{Kind: orchestrator.ActionNone}, "verified")
}

func (r *repl) cmdDelete(ctx context.Context) error {
	fmt.Fprint(r.out, "this permanently deletes the account; type 'yes' to continue: ")

	if !r.scanner.Scan() || r.scanner.Text() != "yes" {
		fmt.Fprintln(r.out, "aborted")
		return nil
	}

	return r.runVerified(ctx, orchestrator.Action{Kind: orchestrator.ActionDeleteAccount}, "account deleted")
}

// runVerified runs the verify ceremony with a follow-up action, then
// the chained registration ceremony if the action needs one. Accounts
// bound to a social provider have no passkey, so they re-verify with a
// fresh identity token instead of an assertion.
func (r *repl) runVerified(ctx context.Context, action orchestrator.Action, success string) error {
	user := r.orch.Session().User()
	if user != nil && (user.LoginProvider == models.ProviderApple || user.LoginProvider == models.ProviderGoogle) {
		return r.runSocialVerified(ctx, action, success, user.LoginProvider)
	}

	c, err := r.orch.StartVerify(ctx, action)
	if err != nil {
		return err
	}

	out, err := r.orch.CompleteVerify(ctx, c)
	if err != nil {
		return err
	}

	if out == nil {
		// Superseded or cancelled; nothing happened.
		return nil
	}

	if !out.Valid {
		fmt.Fprintln(r.out, "verification failed")
		return nil
	}

	if out.Next != nil {
		if err := r.orch.CompleteAddPasskey(ctx, out.Next); err != nil {
			return err
		}
	}

	fmt.Fprintln(r.out, success)

	return nil
}

func (r *repl) runSocialVerified(ctx context.Context, action orchestrator.Action, success, provider string) error {
	fmt.Fprintf(r.out, "enter a fresh %s identity token: ", provider)

	if !r.scanner.Scan() {
		return r.scanner.Err()
	}

	idToken := strings.TrimSpace(r.scanner.Text())
	if idToken == "" {
		fmt.Fprintln(r.out, "aborted")
		return nil
	}

	out, err := r.orch.VerifySocial(ctx, idToken, action)
	if err != nil {
		return err
	}

	if !out.Valid {
		fmt.Fprintln(r.out, "verification failed")
		return nil
	}

	if out.Next != nil {
		if err := r.orch.CompleteAddPasskey(ctx, out.Next); err != nil {
			return err
		}
	}

	fmt.Fprintln(r.out, success)

	return nil
}

func (r *repl) printUser() {
	user := r.orch.Session().User()
	if user == nil {
		return
	}

	fmt.Fprintf(r.out, "logged in as %s (%s)\n", user.DisplayName, user.Handle)

	if r.orch.Session().State() == session.StateUsernamePending {
		fmt.Fprintln(r.out, "this app requires a username; run 'username <name>'")
	}
}
