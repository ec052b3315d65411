// Package repl implements the interactive command loop of the contact
// assistant: it tokenizes free-text input, dispatches to the address
// book operations, and maps every domain error to a one-line reply so
// the session keeps accepting commands.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/username/contact-book/internal/book"
	"github.com/username/contact-book/pkg/dateutil"
	"go.uber.org/zap"
)

var errBirthdayNotSet = errors.New("birthday is not set")

// usageError reports a command invoked with the wrong arguments.
type usageError struct {
	usage string
}

func (e *usageError) Error() string {
	return "usage: " + e.usage
}

// Params configures a Session. Zero values fall back to sensible
// defaults, so tests only set what they exercise.
type Params struct {
	In         io.Reader
	Out        io.Writer
	Prompt     string
	Greeting   string
	WindowDays int              // upcoming-birthday window, default 7
	Now        func() time.Time // injectable date source, default dateutil.Today
}

// Session is one interactive run over a single in-memory address
// book. Single-threaded: each command runs to completion before the
// next line is read.
type Session struct {
	book       *book.AddressBook
	in         io.Reader
	out        io.Writer
	prompt     string
	greeting   string
	windowDays int
	now        func() time.Time
	logger     *zap.Logger
}

// NewSession creates a session over the given address book.
func NewSession(ab *book.AddressBook, params Params, logger *zap.Logger) *Session {
	if params.In == nil {
		params.In = strings.NewReader("")
	}
	if params.Out == nil {
		params.Out = io.Discard
	}
	if params.Prompt == "" {
		params.Prompt = "> "
	}
	if params.Greeting == "" {
		params.Greeting = "Welcome to your contact assistant!"
	}
	if params.WindowDays == 0 {
		params.WindowDays = book.DefaultUpcomingWindowDays
	}
	if params.Now == nil {
		params.Now = dateutil.Today
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		book:       ab,
		in:         params.In,
		out:        params.Out,
		prompt:     params.Prompt,
		greeting:   params.Greeting,
		windowDays: params.WindowDays,
		now:        params.Now,
		logger:     logger,
	}
}

// Run reads commands until exit/close or end of input.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, s.greeting)

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.prompt)

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprintln(s.out, "Please enter a command.")
			continue
		}

		command, args := parseInput(line)
		s.logger.Debug("Executing command",
			zap.String("command", command),
			zap.Int("args", len(args)))

		if command == "exit" || command == "close" {
			fmt.Fprintln(s.out, "Good bye!")
			return scanner.Err()
		}

		fmt.Fprintln(s.out, s.Execute(command, args))
	}

	return scanner.Err()
}

// parseInput splits a raw line into a lowercased command and its
// argument tokens.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	return strings.ToLower(fields[0]), fields[1:]
}

// Execute runs one command and returns the reply line. Errors never
// escape: every domain error maps to a message and the session keeps
// going.
func (s *Session) Execute(command string, args []string) string {
	reply, err := s.dispatch(command, args)
	if err != nil {
		s.logger.Debug("Command failed",
			zap.String("command", command),
			zap.Error(err))
		return errorMessage(err)
	}
	return reply
}

func (s *Session) dispatch(command string, args []string) (string, error) {
	switch command {
	case "hello":
		return "Hi! How can I help you?", nil
	case "add":
		return s.addContact(args)
	case "change":
		return s.changePhone(args)
	case "phone":
		return s.showPhones(args)
	case "delete":
		return s.deleteContact(args)
	case "all":
		return s.showAll()
	case "add-birthday":
		return s.addBirthday(args)
	case "show-birthday":
		return s.showBirthday(args)
	case "birthdays":
		return s.upcomingBirthdays(args)
	default:
		return "Unknown command. Try: add, change, phone, delete, all, add-birthday, show-birthday, birthdays, hello, exit.", nil
	}
}

// addContact is read-or-create: a new name gets a fresh record, an
// existing one gets the phone appended.
func (s *Session) addContact(args []string) (string, error) {
	if len(args) != 2 {
		return "", &usageError{usage: "add <name> <phone>"}
	}
	name, phone := args[0], args[1]

	record, ok := s.book.Find(name)
	if !ok {
		record = book.NewRecord(name)
		if err := record.AddPhone(phone); err != nil {
			return "", err
		}
		s.book.AddRecord(record)
		return fmt.Sprintf("Contact %s added with number %s.", name, phone), nil
	}

	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Number %s added to contact %s.", phone, name), nil
}

func (s *Session) changePhone(args []string) (string, error) {
	if len(args) != 3 {
		return "", &usageError{usage: "change <name> <old-phone> <new-phone>"}
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrContactNotFound
	}
	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s: number %s replaced with %s.", name, oldPhone, newPhone), nil
}

func (s *Session) showPhones(args []string) (string, error) {
	if len(args) != 1 {
		return "", &usageError{usage: "phone <name>"}
	}

	record, ok := s.book.Find(args[0])
	if !ok {
		return "", book.ErrContactNotFound
	}

	phones := record.Phones()
	if len(phones) == 0 {
		return "no phones", nil
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return strings.Join(values, ", "), nil
}

func (s *Session) deleteContact(args []string) (string, error) {
	if len(args) != 1 {
		return "", &usageError{usage: "delete <name>"}
	}
	name := args[0]

	if _, ok := s.book.Find(name); !ok {
		return "", book.ErrContactNotFound
	}
	s.book.Delete(name)
	return fmt.Sprintf("Contact %s deleted.", name), nil
}

func (s *Session) showAll() (string, error) {
	records := s.book.Records()
	if len(records) == 0 {
		return "The contact list is empty.", nil
	}

	lines := make([]string, len(records))
	for i, record := range records {
		lines[i] = record.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Session) addBirthday(args []string) (string, error) {
	if len(args) != 2 {
		return "", &usageError{usage: "add-birthday <name> <DD.MM.YYYY>"}
	}
	name, birthday := args[0], args[1]

	record, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrContactNotFound
	}
	if err := record.SetBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday for contact %s set to %s.", name, birthday), nil
}

func (s *Session) showBirthday(args []string) (string, error) {
	if len(args) != 1 {
		return "", &usageError{usage: "show-birthday <name>"}
	}

	record, ok := s.book.Find(args[0])
	if !ok {
		return "", book.ErrContactNotFound
	}
	birthday, ok := record.Birthday()
	if !ok {
		return "", errBirthdayNotSet
	}
	return birthday.String(), nil
}

// upcomingBirthdays accepts an optional window override in days.
func (s *Session) upcomingBirthdays(args []string) (string, error) {
	if len(args) > 1 {
		return "", &usageError{usage: "birthdays [days]"}
	}

	windowDays := s.windowDays
	if len(args) == 1 {
		days, err := strconv.Atoi(args[0])
		if err != nil || days < 0 {
			return "", &usageError{usage: "birthdays [days]"}
		}
		windowDays = days
	}

	upcoming := s.book.UpcomingBirthdays(s.now(), windowDays)
	if len(upcoming) == 0 {
		return "No upcoming birthdays.", nil
	}

	lines := make([]string, len(upcoming))
	for i, reminder := range upcoming {
		lines[i] = fmt.Sprintf("%s: %s", reminder.Name, reminder.Date)
	}
	return strings.Join(lines, "\n"), nil
}

// errorMessage maps a domain error to the one-line reply shown to the
// user.
func errorMessage(err error) string {
	var usage *usageError
	if errors.As(err, &usage) {
		return "Enter the command and its arguments. " + usage.Error() + "."
	}

	var validation *book.ValidationError
	if errors.As(err, &validation) {
		return "Invalid " + validation.Field + ": " + validation.Reason + "."
	}

	switch {
	case errors.Is(err, book.ErrContactNotFound):
		return "Contact not found."
	case errors.Is(err, book.ErrDuplicatePhone):
		return "That phone number is already stored for this contact."
	case errors.Is(err, book.ErrPhoneNotFound):
		return "Old phone number not found for this contact."
	case errors.Is(err, errBirthdayNotSet):
		return "Birthday is not set."
	default:
		return err.Error()
	}
}
