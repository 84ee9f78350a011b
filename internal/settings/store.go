package settings

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/PolarWolf314/kouchat/internal/configs"
	kerrors "github.com/PolarWolf314/kouchat/internal/errors"
	logger "github.com/PolarWolf314/kouchat/internal/logging"
	"github.com/PolarWolf314/kouchat/internal/properties"
	"github.com/PolarWolf314/kouchat/internal/ui"
	"github.com/PolarWolf314/kouchat/internal/utils"
)

const (
	// DefaultOwnColor is the packed ARGB color of the user's own messages.
	DefaultOwnColor = -15987646
	// DefaultSysColor is the packed ARGB color of system messages.
	DefaultSysColor = -16759040

	minUserCode   = 10000000
	userCodeRange = 10000000
)

// Codec reads and writes the flat key/value settings file.
type Codec interface {
	Load(path string) (map[string]string, error)
	Save(path string, values map[string]string, header string) error
}

// Store holds the user's settings. It loads them from disk when created and
// writes them back when Save is called.
//
// A Store is meant to be owned by one goroutine. Callers that share it must
// serialize access themselves.
type Store struct {
	paths        *configs.Paths
	codec        Codec
	ensureFolder func(path string) error
	reporter     ui.ErrorReporter
	log          logger.Logger
	userName     func() (string, error)
	osName       string
	rand         *rand.Rand
	now          func() time.Time

	me *User

	ownColor         int
	sysColor         int
	sound            bool
	logging          bool
	smileys          bool
	balloons         bool
	browser          string
	lookAndFeel      string
	networkInterface string

	// Startup arguments, never saved.
	noPrivateChat bool
	alwaysLog     bool
	logLocation   string

	listeners []subscription
}

// Option configures a Store.
type Option func(*Store)

// WithCodec replaces the settings file codec.
func WithCodec(c Codec) Option {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithFolderCreator replaces the function that creates the application folder.
func WithFolderCreator(fn func(path string) error) Option {
	return func(s *Store) {
		if fn != nil {
			s.ensureFolder = fn
		}
	}
}

// WithReporter sets where save failures are shown to the user.
func WithReporter(r ui.ErrorReporter) Option {
	return func(s *Store) {
		if r != nil {
			s.reporter = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithUserName replaces the lookup of the operating system user name.
func WithUserName(fn func() (string, error)) Option {
	return func(s *Store) {
		if fn != nil {
			s.userName = fn
		}
	}
}

// WithOperatingSystem overrides the operating system reported to other users.
func WithOperatingSystem(name string) Option {
	return func(s *Store) {
		s.osName = name
	}
}

// WithRand sets the source used to generate the user code.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		s.rand = r
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates the settings for this process: it generates the identity,
// applies the defaults, and loads the settings file. Problems with the file
// are logged and never returned; the defaults stay in effect.
//
// Remember to call SetClient before the identity is used on the network.
func New(paths *configs.Paths, opts ...Option) *Store {
	s := &Store{
		paths:        paths,
		codec:        properties.Codec{},
		ensureFolder: utils.EnsureFolder,
		reporter:     ui.ConsoleReporter{},
		userName:     utils.GetUsername,
		osName:       utils.GetOperatingSystem(),
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	code := minUserCode + s.intN(userCodeRange)
	now := s.now()

	s.me = NewUser(s.createNickName(code), code)
	s.me.Me = true
	s.me.LastIdle = now
	s.me.LogonTime = now
	s.me.OperatingSystem = s.osName

	s.ownColor = DefaultOwnColor
	s.sysColor = DefaultSysColor
	s.sound = true
	s.smileys = true

	s.load()

	return s
}

func (s *Store) intN(n int) int {
	if s.rand != nil {
		return s.rand.IntN(n)
	}
	return rand.IntN(n)
}

// createNickName builds a nick from the operating system user name: first
// word, at most 10 characters, first letter capitalized. Falls back to the
// user code when that is not a valid nick.
func (s *Store) createNickName(code int) string {
	fallback := strconv.Itoa(code)

	userName, err := s.userName()
	if err != nil {
		s.log.Debugf("Could not get user name, using user code as nick: %v", err)
		return fallback
	}

	first := strings.Split(userName, " ")[0]
	nick := utils.CapitalizeFirstLetter(utils.Shorten(strings.TrimSpace(first), utils.MaxNickLength))

	if utils.IsValidNick(nick) {
		return nick
	}

	s.log.Debugf("User name %q is not a valid nick, using user code", userName)
	return fallback
}

// Paths returns the file locations the store uses.
func (s *Store) Paths() *configs.Paths {
	return s.paths
}

// Me returns the identity of the application user.
func (s *Store) Me() *User {
	return s.me
}

// SetClient sets the client description reported to other users,
// like "Console" or "Swing". Must be called before logging on to the network.
func (s *Store) SetClient(client string) {
	s.me.Client = fmt.Sprintf("%s v%s %s", configs.AppName, configs.AppVersion, client)
}

// SetNickName changes the nick name. Surrounding whitespace is removed.
func (s *Store) SetNickName(nick string) error {
	nick = strings.TrimSpace(nick)
	if !utils.IsValidNick(nick) {
		return fmt.Errorf("%q: %w", nick, kerrors.ErrInvalidNick)
	}
	s.me.Nick = nick
	return nil
}

func (s *Store) OwnColor() int {
	return s.ownColor
}

func (s *Store) SetOwnColor(color int) {
	s.ownColor = color
}

func (s *Store) SysColor() int {
	return s.sysColor
}

func (s *Store) SetSysColor(color int) {
	s.sysColor = color
}

func (s *Store) Sound() bool {
	return s.sound
}

func (s *Store) SetSound(sound bool) {
	s.sound = sound
}

// Logging reports if the main chat should be logged. The --always-log
// startup argument wins over the saved setting.
func (s *Store) Logging() bool {
	return s.alwaysLog || s.logging
}

// StoredLogging returns the saved logging setting, ignoring --always-log.
func (s *Store) StoredLogging() bool {
	return s.logging
}

// SetLogging changes the saved logging setting. Listeners are notified
// when the value changes.
func (s *Store) SetLogging(logging bool) {
	if s.logging == logging {
		return
	}
	s.logging = logging
	s.fireChanged(Logging)
}

func (s *Store) Smileys() bool {
	return s.smileys
}

func (s *Store) SetSmileys(smileys bool) {
	s.smileys = smileys
}

// Balloons reports if balloon notifications are enabled.
func (s *Store) Balloons() bool {
	return s.balloons
}

func (s *Store) SetBalloons(balloons bool) {
	s.balloons = balloons
}

// Browser is the command used to open links. Empty means the system default.
func (s *Store) Browser() string {
	return s.browser
}

func (s *Store) SetBrowser(browser string) {
	s.browser = browser
}

func (s *Store) LookAndFeel() string {
	return s.lookAndFeel
}

func (s *Store) SetLookAndFeel(lookAndFeel string) {
	s.lookAndFeel = lookAndFeel
}

// NetworkInterface is the name of the network interface to use.
// Empty lets KouChat choose automatically.
func (s *Store) NetworkInterface() string {
	return s.networkInterface
}

func (s *Store) SetNetworkInterface(name string) {
	s.networkInterface = name
}

// NoPrivateChat reports if private chat was disabled at startup.
func (s *Store) NoPrivateChat() bool {
	return s.noPrivateChat
}

func (s *Store) SetNoPrivateChat(noPrivateChat bool) {
	s.noPrivateChat = noPrivateChat
}

// AlwaysLog reports if logging was forced on at startup.
func (s *Store) AlwaysLog() bool {
	return s.alwaysLog
}

func (s *Store) SetAlwaysLog(alwaysLog bool) {
	s.alwaysLog = alwaysLog
}

// LogLocation returns the folder to store chat logs in, always ending with a
// path separator. The startup argument is used if set, the default log folder
// otherwise.
func (s *Store) LogLocation() string {
	if strings.TrimSpace(s.logLocation) != "" {
		return utils.AppendSeparator(s.logLocation)
	}
	return s.paths.LogFolder
}

// LogLocationArgument returns the log folder startup argument as given,
// or "" when it was not set.
func (s *Store) LogLocationArgument() string {
	return s.logLocation
}

// SetLogLocation sets the log folder from a startup argument.
func (s *Store) SetLogLocation(location string) {
	s.logLocation = location
}
