package shared

// DataSource names the backend that currently serves requests.
type DataSource string

const (
	DataSourceMongo    DataSource = "mongodb"
	DataSourceFallback DataSource = "fallback_json"
	// DataSourceNone means the snapshot could not be loaded either; the
	// in-memory list starts empty but still accepts writes.
	DataSourceNone DataSource = "none"
)

func (d DataSource) String() string {
	return string(d)
}

func (d DataSource) IsPrimary() bool {
	return d == DataSourceMongo
}

// ListSource tags collection reads.
type ListSource string

const (
	ListSourceMongo         ListSource = "mongodb"
	ListSourceFallback      ListSource = "fallback"
	ListSourceErrorRecovery ListSource = "fallback_error_recovery"
)

type Health struct {
	Healthy     bool
	Connected   bool
	Source      DataSource
	RoomsLoaded int
	Err         error
}
