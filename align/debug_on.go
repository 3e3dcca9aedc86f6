//go:build aligndebug

package align

const debug = true
