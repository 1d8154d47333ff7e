// Package topology defines the fixed resource set a project prefix expands
// to: the typed resource descriptors, the registry that derives them, and
// the manifest of resources a run has found still existing.
package topology

import "fmt"

// Kind identifies one of the resource types that make up an environment.
type Kind string

const (
	KindBucket    Kind = "bucket"
	KindTable     Kind = "table"
	KindKeyAlias  Kind = "key alias"
	KindRole      Kind = "role"
	KindUser      Kind = "user"
	KindFunction  Kind = "function"
	KindLayer     Kind = "layer"
	KindLogGroup  Kind = "log group"
	KindParameter Kind = "parameter"
)

// Kinds returns every resource kind in registry (display) order.
func Kinds() []Kind {
	return []Kind{
		KindBucket, KindTable, KindKeyAlias, KindRole, KindUser,
		KindFunction, KindLayer, KindLogGroup, KindParameter,
	}
}

// Resource describes one concrete resource: its kind, the provider-native
// identifier deletion calls use, and a short human name for display.
type Resource struct {
	Kind Kind
	ID   string
	Name string
}

func (r Resource) String() string {
	return fmt.Sprintf("%s %q", r.Kind, r.ID)
}

// Manifest is the ordered set of resources discovery found still existing.
// Order matches the registry and is the order shown to the operator.
// A manifest never changes after it is built; Resources returns a copy.
type Manifest struct {
	resources []Resource
}

// NewManifest builds a manifest from the given resources, preserving order.
func NewManifest(resources []Resource) *Manifest {
	m := &Manifest{resources: make([]Resource, len(resources))}
	copy(m.resources, resources)
	return m
}

// Resources returns the manifest entries in display order.
func (m *Manifest) Resources() []Resource {
	out := make([]Resource, len(m.resources))
	copy(out, m.resources)
	return out
}

// Len returns the number of resources in the manifest.
func (m *Manifest) Len() int { return len(m.resources) }

// Empty reports whether discovery found nothing to delete.
func (m *Manifest) Empty() bool { return len(m.resources) == 0 }
