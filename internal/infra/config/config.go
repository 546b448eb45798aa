package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env      string
	HTTPAddr string

	PropertyID string
	Currency   string

	// DefaultNightlyPriceCents backstops rooms with no price anywhere in the
	// chain: room, rate plan, room type base.
	DefaultNightlyPriceCents int64

	StorageMode string
	MongoURI    string
	MongoDB     string

	RedisAddr string
	CacheTTL  time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	BookingURL      string
	BookingUsername string
	BookingPassword string
	BookingHotelID  string
	BookingRateID   string

	ExpediaURL        string
	ExpediaUsername   string
	ExpediaPassword   string
	ExpediaHotelID    string
	ExpediaRatePlanID string

	AirbnbURL       string
	AirbnbToken     string
	AirbnbListingID string

	GDSEnabled     bool
	GDSAmadeusURL  string
	GDSSabreURL    string
	GDSTravelURL   string
	GDSAPIKey      string
	GDSAPISecret   string
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration

	SyncInterval time.Duration
	SyncHorizon  int
	SyncChannels []string
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		PropertyID:      getEnv("PROPERTY_ID", "default"),
		Currency:        getEnv("CURRENCY", "PLN"),
		StorageMode:     strings.ToLower(getEnv("STORAGE_MODE", "memory")),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDB:         getEnv("MONGO_DB", "innsync"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "inventory.sync"),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3AccessKey:     getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:     getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:        getEnv("S3_BUCKET", "innsync-payloads"),
		BookingURL:      getEnv("BOOKING_COM_URL", "https://supply-xml.booking.com/hotels/xml/availability"),
		BookingUsername: os.Getenv("BOOKING_COM_USERNAME"),
		BookingPassword: os.Getenv("BOOKING_COM_PASSWORD"),
		BookingHotelID:  os.Getenv("BOOKING_COM_HOTEL_ID"),
		BookingRateID:   os.Getenv("BOOKING_COM_RATE_ID"),

		ExpediaURL:        getEnv("EXPEDIA_URL", "https://services.expediapartnercentral.com/eqc/ar"),
		ExpediaUsername:   os.Getenv("EXPEDIA_USERNAME"),
		ExpediaPassword:   os.Getenv("EXPEDIA_PASSWORD"),
		ExpediaHotelID:    os.Getenv("EXPEDIA_HOTEL_ID"),
		ExpediaRatePlanID: getEnv("EXPEDIA_RATE_PLAN_ID", "1"),

		AirbnbURL:       getEnv("AIRBNB_URL", "https://api.airbnb.com/v2/calendar_operations"),
		AirbnbToken:     os.Getenv("AIRBNB_TOKEN"),
		AirbnbListingID: os.Getenv("AIRBNB_LISTING_ID"),

		GDSAmadeusURL: getEnv("GDS_AMADEUS_URL", ""),
		GDSSabreURL:   getEnv("GDS_SABRE_URL", ""),
		GDSTravelURL:  getEnv("GDS_TRAVELPORT_URL", ""),
		GDSAPIKey:     os.Getenv("GDS_API_KEY"),
		GDSAPISecret:  os.Getenv("GDS_API_SECRET"),
	}

	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	channels := getEnv("SYNC_CHANNELS", "")
	for _, raw := range strings.Split(channels, ",") {
		if v := strings.TrimSpace(raw); v != "" {
			cfg.SyncChannels = append(cfg.SyncChannels, v)
		}
	}

	defaultPrice, err := parseInt64Env("DEFAULT_NIGHTLY_PRICE_CENTS", 10000)
	if err != nil {
		return Config{}, err
	}
	cfg.DefaultNightlyPriceCents = defaultPrice

	cacheTTL, err := parseDurationEnv("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}
	cfg.CacheTTL = cacheTTL

	reqTimeout, err := parseDurationEnv("CHANNEL_REQUEST_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.RequestTimeout = reqTimeout

	attempts, err := parseInt64Env("CHANNEL_RETRY_ATTEMPTS", 3)
	if err != nil {
		return Config{}, err
	}
	cfg.RetryAttempts = int(attempts)

	retryDelay, err := parseDurationEnv("CHANNEL_RETRY_DELAY", 1500*time.Millisecond)
	if err != nil {
		return Config{}, err
	}
	cfg.RetryDelay = retryDelay

	syncInterval, err := parseDurationEnv("SYNC_INTERVAL", time.Hour)
	if err != nil {
		return Config{}, err
	}
	cfg.SyncInterval = syncInterval

	horizon, err := parseInt64Env("SYNC_HORIZON_DAYS", 30)
	if err != nil {
		return Config{}, err
	}
	cfg.SyncHorizon = int(horizon)

	gdsEnabled, err := parseBoolEnv("GDS_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	cfg.GDSEnabled = gdsEnabled

	useSSL, err := parseBoolEnv("S3_USE_SSL", false)
	if err != nil {
		return Config{}, err
	}
	cfg.S3UseSSL = useSSL

	if cfg.StorageMode == "mongo" && cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MONGO_URI is required when STORAGE_MODE=mongo")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseInt64Env(key string, def int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s integer: %q", key, raw)
	}
	return v, nil
}

func parseBoolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "y", "on":
		return true, nil
	case "0", "f", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s boolean: %q", key, raw)
	}
}
