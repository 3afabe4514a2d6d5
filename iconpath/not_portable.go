//go:build !portable
// +build !portable

package iconpath

const isPortableBuild = false
