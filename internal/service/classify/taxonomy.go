package classify

// criticalSounds is the life-safety taxonomy. An event matching any entry is
// always surfaced unless the device explicitly excludes it.
var criticalSounds = []string{
	"fire alarm",
	"smoke alarm",
	"smoke detector",
	"siren",
	"civil defense siren",
	"glass",
	"shatter",
	"breaking",
	"baby cry",
	"infant cry",
	"crying",
	"screaming",
	"shout",
	"water leak",
	"dripping",
	"explosion",
	"gunshot",
	"gunfire",
	"burglar alarm",
	"intrusion",
}

// householdSounds is the convenience taxonomy surfaced as lower-urgency
// notifications.
var householdSounds = []string{
	"doorbell",
	"ding-dong",
	"knock",
	"telephone bell ringing",
	"phone ring",
	"ringtone",
	"alarm clock",
	"beep",
	"microwave oven",
	"kettle whistle",
	"washing machine",
	"timer",
}
