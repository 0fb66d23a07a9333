package contracts

type Config struct {
	ManifestPath    string
	SourceRoot      string
	DestinationRoot string
	Workers         int
	Algorithm       string
	CatalogPath     string
	HeaderLines     int
	Verbose         bool
}

type Environment interface {
	LookupEnv(key string) (value string, set bool)
	Concurrency() int
}
