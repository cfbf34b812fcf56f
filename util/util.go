package util

const SiteName = "Account Site"

func DecorateTitle(title string) string {
	if title == "" {
		return SiteName
	}
	return title + " · " + SiteName
}
