package symbols

// AuditCmd decodes auditon(2)'s command argument (macOS <bsm/audit.h>).
var AuditCmd = ConstMap{
	2:  "A_GETPOLICY",
	3:  "A_SETPOLICY",
	4:  "A_GETKMASK",
	5:  "A_SETKMASK",
	6:  "A_GETQCTRL",
	7:  "A_SETQCTRL",
	8:  "A_GETCWD",
	10: "A_GETCAR",
	11: "A_GETSTAT",
	12: "A_SETSTAT",
	13: "A_SETUMASK",
	14: "A_SETSMASK",
	15: "A_GETCOND",
	16: "A_SETCOND",
	17: "A_GETCLASS",
	18: "A_SETCLASS",
	19: "A_GETPINFO",
	20: "A_SETPMASK",
	21: "A_SETFSIZE",
	22: "A_GETFSIZE",
	23: "A_GETPINFO_ADDR",
	24: "A_GETKAUDIT",
	25: "A_SETKAUDIT",
}
