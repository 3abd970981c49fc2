// Package yamlconfig provides a YAML implementation of config.Loader for
// setups kept next to other YAML tooling. Mappings are walked as yaml.Node
// trees so declaration order survives decoding.
package yamlconfig
