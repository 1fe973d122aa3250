// Package plugins hosts plugin implementation subpackages. It contains no
// production code itself; the architecture guard test lives alongside it.
//
// Plugin packages may depend on cleancore/pkg/... and on the registration
// surface in cleancore/internal/core. Other internal packages (logging,
// config, input) belong to the command wiring and stay out of plugins.
package plugins
