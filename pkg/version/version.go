package version

import "fmt"

var (
	// Git SHA and build time will be set during build with -ldflags -X
	GitTagSha = "Git tag sha: Not provided, use Makefile to build"
	BuildTime = ""
)

func GetVersion() string {
	if BuildTime == "" {
		return GitTagSha
	}
	return fmt.Sprintf("%s, built at %s", GitTagSha, BuildTime)
}
