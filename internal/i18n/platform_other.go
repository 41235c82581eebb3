//go:build !windows

package i18n

func platformLanguages() []string {
	return nil
}
