package common

import (
	"log"
	"os"
	"regexp"

	"github.com/gin-gonic/gin"
)

var (
	ProjectID string

	GAEService string

	GAEVersion string

	// Production flag indicating if app is running the production backend on appengine
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const (
	productionProject = "haulflow-backoffice"

	devProject = "haulflow-backoffice-dev"
)

// Firestore collections consumed by the back office jobs.
const (
	CollectionReminders    = "reminders"
	CollectionDailyMetrics = "dailyMetrics"
	CollectionCompanies    = "companies"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+\/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

func init() {
	initEnvVariables()
}

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", devProject)

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	GAEService = GetEnv("GAE_SERVICE", "scheduled-jobs")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	if value := os.Getenv("FIRESTORE_EMULATOR_HOST"); value != "" {
		log.Printf("Using Firestore Emulator: %s", value)
	}

	Production = ProjectID == productionProject && !IsLocalhost
}

// GetEnv returns the value of an environment variable, or a fallback if unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// ValidEmail reports whether the given address can be used as a mail recipient.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}
