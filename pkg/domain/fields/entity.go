package fields

import (
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
)

// Fields are the plain event and issue attributes, including span
// operation breakdowns.
var Fields = map[string]model.FieldDefinition{
	"age": {
		Desc:      "The age of the issue in relative time",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueDate,
	},
	"assigned": {
		Desc:      "Assignee of the issue as a user ID",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"assigned_or_suggested": {
		Desc:      "Assignee or suggestee of the issue as a user ID",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"bookmarks": {
		Desc:      "The issue was bookmarked by a user ID",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"culprit": {
		Desc:      "Deprecated",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.arch": {
		Desc:      "CPU architecture",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.battery_level": {
		Desc:      "Indicates remaining battery life",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.brand": {
		Desc:      "Brand of device",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.charging": {
		Desc:      "Charging at the time of the event",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueBoolean,
	},
	"device.class": {
		Desc:      "The estimated performance level of the device, graded low, medium, or high",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.family": {
		Desc:      "Model name across generations",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.locale": {
		Desc:      "The locale of the user's device",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.model_id": {
		Desc:      "Internal hardware revision",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.name": {
		Desc:      "Descriptor details",
		Kind:      types.FieldKindTag,
		ValueType: types.FieldValueString,
	},
	"device.online": {
		Desc:      "Online at the time of the event",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueBoolean,
	},
	"device.orientation": {
		Desc:      "Portrait or landscape view",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.screen_density": {
		Desc:      "Pixel density of the device screen",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.screen_dpi": {
		Desc:      "Dots per inch of the device screen",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.screen_height_pixels": {
		Desc:      "Height of the device screen in pixels",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.screen_width_pixels": {
		Desc:      "Width of the device screen in pixels",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"device.simulator": {
		Desc:      "Indicates if it occurred on a simulator",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueBoolean,
	},
	"device.uuid": {
		Desc:      "Unique device identifier",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"dist": {
		Desc:      "Distinguishes between build or deployment variants of the same release of an application",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"environment": {
		Desc:      "The environment the event was seen in",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"error.handled": {
		Desc:      "Determines handling status of the error",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueBoolean,
	},
	"error.mechanism": {
		Desc:      "The mechanism that created the error",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"error.type": {
		Desc:      "The type of exception",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"error.unhandled": {
		Desc:      "Determines unhandling status of the error",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueBoolean,
	},
	"error.value": {
		Desc:      "Original value that exhibits error",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"event.timestamp": {
		Desc:      "Date and time of the event",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueDate,
	},
	"event.type": {
		Desc:      "Type of event (Errors, transactions, csp and default)",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"first_release": {
		Desc:      "Issues first seen in a given release",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"first_seen": {
		Desc:      "Issues first seen at a given time",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueDate,
	},
	"geo.city": {
		Desc:      "Full name of the city",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"geo.country_code": {
		Desc:      "Country code based on ISO 3166-1",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"geo.region": {
		Desc:      "Full name of the country",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"geo.subdivision": {
		Desc:      "Full name of the subdivision",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"has": {
		Desc:      "Determines if a tag or field exists in an event",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"http.method": {
		Desc:      "Method of the request that created the event",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"http.referer": {
		Desc:      "The web page the resource was requested from",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"http.status_code": {
		Desc:      "Type of response (i.e., 200, 404)",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueInteger,
	},
	"http.url": {
		Desc:      "Full URL of the request without parameters",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"id": {
		Desc:      "The event identification number",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"is": {
		Desc:      "The properties of an issue (i.e. Resolved, unresolved)",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"issue": {
		Desc:      "The issue identification short code",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"issue.category": {
		Desc:      "The category of issue, error or performance",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"issue.type": {
		Desc:      "The type of issue",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"last_seen": {
		Desc:      "Issues last seen at a given time",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueDate,
	},
	"level": {
		Desc:      "Severity of the event (i.e., fatal, error, warning)",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"location": {
		Desc:      "Location of error",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"message": {
		Desc:      "Error message or transaction name",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"os.build": {
		Desc:      "Name of the build",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"os.kernel_version": {
		Desc:      "Version number",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"os.name": {
		Desc:      "Name of the Operating System",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"platform.name": {
		Desc:      "Name of the platform",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"profile.id": {
		Desc:      "The ID of an associated profile",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"project": {
		Desc:      "The project the event belongs to",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"release": {
		Desc:      "The version of your code deployed to an environment",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"release.build": {
		Desc:      "The full version number that identifies the iteration",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"release.package": {
		Desc:      "The identifier unique to the project or application",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"release.stage": {
		Desc:      "Stage of usage (i.e., adopted, replaced, low)",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"release.version": {
		Desc:      "An abbreviated version number of the build",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"replay.id": {
		Desc:      "The ID of an associated Session Replay",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"sdk.name": {
		Desc:      "Name of the platform that sent the event",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"sdk.version": {
		Desc:      "Version of the platform that sent the event",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"stack.abs_path": {
		Desc:      "Absolute path to the source file",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"stack.colno": {
		Desc:      "Column number of the stack trace",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueInteger,
	},
	"stack.filename": {
		Desc:      "Relative path to the source file from the root directory",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"stack.function": {
		Desc:      "Name of function where the error occurred",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"stack.in_app": {
		Desc:      "Indicates if frame is related to relevant code in stack trace",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueBoolean,
	},
	"stack.lineno": {
		Desc:      "Line number of the stack trace",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueInteger,
	},
	"stack.module": {
		Desc:      "Name of the module where the error occurred",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"stack.package": {
		Desc:      "Name of the package where the error occurred",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"stack.resource": {
		Desc:      "The file that triggered the error",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"stack.stack_level": {
		Desc:      "Number of frames in the stack trace",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueNumber,
	},
	"timestamp": {
		Desc:      "The time an event finishes",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueDate,
	},
	"timestamp.to_day": {
		Desc:      "Rounded down to the nearest day",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueDate,
	},
	"timestamp.to_hour": {
		Desc:      "Rounded down to the nearest hour",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueDate,
	},
	"times_seen": {
		Desc:      "Total number of events",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueNumber,
	},
	"title": {
		Desc:      "Error or transaction name identifier",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"trace": {
		Desc:      "The trace identification number",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"trace.parent_span": {
		Desc:      "Span identification number of the parent to the event",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"trace.span": {
		Desc:      "Span identification number of the root span",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"transaction": {
		Desc:      "Error or transaction name identifier",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"transaction.duration": {
		Desc:      "Duration, in milliseconds, of the transaction",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueDuration,
	},
	"transaction.op": {
		Desc:      "Short code identifying the type of operation the span is measuring",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"transaction.status": {
		Desc:      "Describes the status of the span/transaction",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"unreal.crash_type": {
		Desc:      "Type of crash, used by Unreal Engine",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"user": {
		Desc:      "User identification value",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"user.display": {
		Desc:      "The first user field available of email, username, ID, and IP",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"user.email": {
		Desc:      "Email address of the user",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"user.id": {
		Desc:      "Application specific internal identifier of the user",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"user.ip": {
		Desc:      "IP Address of the user",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"user.username": {
		Desc:      "Username of the user",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueString,
	},
	"app.in_foreground": {
		Desc:      "Indicates if the app is in the foreground or background",
		Kind:      types.FieldKindField,
		ValueType: types.FieldValueBoolean,
	},
	"spans.browser": {
		Desc:      "Cumulative time based on the browser operation",
		Kind:      types.FieldKindBreakdown,
		ValueType: types.FieldValueDuration,
	},
	"spans.db": {
		Desc:      "Cumulative time based on the database operation",
		Kind:      types.FieldKindBreakdown,
		ValueType: types.FieldValueDuration,
	},
	"spans.http": {
		Desc:      "Cumulative time based on the http operation",
		Kind:      types.FieldKindBreakdown,
		ValueType: types.FieldValueDuration,
	},
	"spans.resource": {
		Desc:      "Cumulative time based on the resource operation",
		Kind:      types.FieldKindBreakdown,
		ValueType: types.FieldValueDuration,
	},
	"spans.total.time": {
		Desc:      "Cumulative time based on all operations",
		Kind:      types.FieldKindBreakdown,
		ValueType: types.FieldValueDuration,
	},
}
