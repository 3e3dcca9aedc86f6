//go:build !aligndebug

package align

const debug = false
