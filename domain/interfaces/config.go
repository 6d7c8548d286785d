package interfaces

// ConfigSource reads values from a sectioned configuration store
type ConfigSource interface {
	Read(section string, key string) (string, error)
}
