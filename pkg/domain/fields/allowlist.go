package fields

// IssueFields are the keys selectable in issue search
var IssueFields = []string{
	"age",
	"assigned",
	"assigned_or_suggested",
	"bookmarks",
	"device.arch",
	"device.brand",
	"device.class",
	"device.family",
	"device.locale",
	"device.orientation",
	"device.simulator",
	"device.uuid",
	"dist",
	"error.handled",
	"error.mechanism",
	"error.type",
	"error.unhandled",
	"error.value",
	"event.timestamp",
	"first_release",
	"first_seen",
	"has",
	"http.method",
	"http.referer",
	"http.url",
	"id",
	"is",
	"issue.category",
	"issue.type",
	"last_seen",
	"level",
	"location",
	"message",
	"os.build",
	"os.kernel_version",
	"platform.name",
	"release",
	"release.build",
	"release.package",
	"release.stage",
	"release.version",
	"sdk.name",
	"sdk.version",
	"stack.abs_path",
	"stack.filename",
	"stack.function",
	"stack.module",
	"stack.stack_level",
	"timestamp",
	"times_seen",
	"title",
	"trace",
	"transaction",
	"unreal.crash_type",
	"user.email",
	"user.id",
	"user.ip",
	"user.username",
}

// DiscoverFields are the keys selectable when building discover queries
var DiscoverFields = []string{
	"id",
	"issue",
	"project",
	"environment",
	"release",
	"dist",
	"transaction",
	"transaction.duration",
	"transaction.op",
	"transaction.status",
	"title",
	"message",
	"location",
	"culprit",
	"level",
	"event.type",
	"timestamp",
	"timestamp.to_day",
	"timestamp.to_hour",
	"trace",
	"trace.span",
	"trace.parent_span",
	"platform.name",
	"sdk.name",
	"sdk.version",
	"os.name",
	"os.build",
	"os.kernel_version",
	"device.arch",
	"device.battery_level",
	"device.brand",
	"device.charging",
	"device.family",
	"device.locale",
	"device.model_id",
	"device.name",
	"device.online",
	"device.orientation",
	"device.screen_density",
	"device.screen_dpi",
	"device.screen_height_pixels",
	"device.screen_width_pixels",
	"device.simulator",
	"device.uuid",
	"geo.city",
	"geo.country_code",
	"geo.region",
	"geo.subdivision",
	"http.method",
	"http.referer",
	"http.status_code",
	"http.url",
	"error.handled",
	"error.mechanism",
	"error.type",
	"error.unhandled",
	"error.value",
	"stack.abs_path",
	"stack.colno",
	"stack.filename",
	"stack.function",
	"stack.in_app",
	"stack.lineno",
	"stack.module",
	"stack.package",
	"stack.resource",
	"stack.stack_level",
	"user",
	"user.display",
	"user.email",
	"user.id",
	"user.ip",
	"user.username",
	"release.build",
	"release.package",
	"release.version",
	"profile.id",
	"replay.id",
	"app.in_foreground",
	"unreal.crash_type",

	"measurements.app_start_cold",
	"measurements.app_start_warm",
	"measurements.cls",
	"measurements.fcp",
	"measurements.fid",
	"measurements.fp",
	"measurements.inp",
	"measurements.lcp",
	"measurements.ttfb",
	"measurements.ttfb.requesttime",
	"measurements.frames_frozen",
	"measurements.frames_frozen_rate",
	"measurements.frames_slow",
	"measurements.frames_slow_rate",
	"measurements.frames_total",
	"measurements.stall_count",
	"measurements.stall_longest_time",
	"measurements.stall_percentage",
	"measurements.stall_total_time",
	"measurements.time_to_initial_display",
	"measurements.time_to_full_display",

	"spans.browser",
	"spans.db",
	"spans.http",
	"spans.resource",
	"spans.total.time",
}
