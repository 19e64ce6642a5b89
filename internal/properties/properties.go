package properties

import "os"

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

type Color struct {
	R, G, B uint8
}

// ColorMap holds the render colors of the change-class layer, keyed by
// ChangeClass.String().
var ColorMap = map[string]Color{
	"no_data":       {60, 60, 60},
	"none":          {224, 224, 224},
	"loss":          {215, 48, 39},
	"thinning":      {252, 141, 89},
	"emerging":      {217, 239, 139},
	"thickening":    {145, 207, 96},
	"densification": {26, 152, 80},
	"establishment": {0, 104, 55},
}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}
func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}
