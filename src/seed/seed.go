package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/grupo09/paises-backend/src/models"
)

// MissingCapital replaces the capital of countries the API reports without one.
const MissingCapital = "No disponible"

var seededCountries = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "paises",
	Name:      "seeded_countries",
	Help:      "Number of countries inserted by the startup seeder",
})

var errMalformedPayload = errors.New("countries API returned a malformed payload")

// Store is the part of the repository the seeder needs.
type Store interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, countries []models.CountryModel) error
}

type Seeder struct {
	store  Store
	client *http.Client
	url    string
	tenant string
}

// NewSeeder creates a seeder importing from url. A zero timeout waits forever.
func NewSeeder(store Store, url, tenant string, timeout time.Duration) *Seeder {
	return &Seeder{
		store:  store,
		client: &http.Client{Timeout: timeout},
		url:    url,
		tenant: tenant,
	}
}

// Seed loads the countries into an empty store. Failures are logged and
// swallowed so a remote outage never blocks serving existing data.
func (s *Seeder) Seed(ctx context.Context) {
	if _, err := s.LoadCountries(ctx); err != nil {
		log.WithError(err).Error("Error loading countries into the database")
	}
}

// LoadCountries imports the Spanish speaking countries of the configured
// region when the store holds no countries yet, and returns how many were
// inserted.
func (s *Seeder) LoadCountries(ctx context.Context) (int, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if total > 0 {
		log.Warnf("The database already contains %d countries, nothing to seed", total)
		return 0, nil
	}

	log.WithField("url", s.url).Info("Countries database is empty, loading data from the API...")

	body, err := s.fetch(ctx)
	if err != nil {
		return 0, err
	}

	countries, err := ParseCountries(body, s.tenant)
	if err != nil {
		return 0, err
	}

	if err := s.store.InsertMany(ctx, countries); err != nil {
		return 0, err
	}

	seededCountries.Set(float64(len(countries)))
	log.Printf("Saved %d countries in the database", len(countries))
	return len(countries), nil
}

func (s *Seeder) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building countries API request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling countries API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("countries API error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading countries API response: %w", err)
	}
	return body, nil
}

// ParseCountries maps a restcountries payload to catalog records, keeping
// only countries where Spanish is spoken.
func ParseCountries(body []byte, tenant string) ([]models.CountryModel, error) {
	if !gjson.ValidBytes(body) {
		return nil, errMalformedPayload
	}
	payload := gjson.ParseBytes(body)
	if !payload.IsArray() {
		return nil, errMalformedPayload
	}

	countries := []models.CountryModel{}
	payload.ForEach(func(_, c gjson.Result) bool {
		if !c.Get("languages.spa").Exists() {
			return true
		}

		capital := c.Get("capital.0").String()
		if capital == "" {
			capital = MissingCapital
		}

		country := models.CountryModel{
			Name:         c.Get("name.common").String(),
			OfficialName: c.Get("name.official").String(),
			Capital:      capital,
			Borders:      stringList(c.Get("borders")),
			Area:         c.Get("area").Float(),
			Population:   c.Get("population").Int(),
			Gini:         latestGini(c.Get("gini")),
			Timezones:    stringList(c.Get("timezones")),
			Creator:      tenant,
		}
		countries = append(countries, country)
		return true
	})
	return countries, nil
}

func stringList(r gjson.Result) models.StringList {
	out := models.StringList{}
	for _, item := range r.Array() {
		out = append(out, item.String())
	}
	return out
}

// latestGini keeps only the most recent year, so seeded records hold at most
// one gini entry like every other record.
func latestGini(r gjson.Result) models.Gini {
	if !r.IsObject() {
		return nil
	}
	all := models.Gini{}
	r.ForEach(func(year, value gjson.Result) bool {
		all[year.String()] = value.Float()
		return true
	})
	year, index, ok := all.Latest()
	if !ok {
		return nil
	}
	return models.NewGini(year, index)
}
