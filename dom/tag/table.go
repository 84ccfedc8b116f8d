package tag

// Known tag identifiers. The first block holds the pseudo-tags, which never
// correspond to markup elements.
const (
	Undefined ID = iota
	Text
	Comment
	Doctype
	EndOfFile

	A
	Abbr
	Acronym
	Address
	AnnotationXML
	Applet
	Area
	Article
	Aside
	Audio
	B
	Base
	BaseFont
	BDI
	BDO
	BgSound
	Big
	Blink
	BlockQuote
	Body
	BR
	Button
	Canvas
	Caption
	Center
	Cite
	Code
	Col
	ColGroup
	Command
	CommentElement
	Data
	DataList
	DD
	Del
	Desc
	Details
	Dfn
	Dialog
	Dir
	Div
	DL
	DT
	Em
	Embed
	FieldSet
	FigCaption
	Figure
	Font
	Footer
	ForeignObject
	Form
	Frame
	FrameSet
	H1
	H2
	H3
	H4
	H5
	H6
	Head
	Header
	HGroup
	HR
	HTML
	I
	IFrame
	Image
	Img
	Input
	Ins
	IsIndex
	KBD
	KeyGen
	Label
	Legend
	LI
	Link
	Listing
	Main
	MAlignMark
	Map
	Mark
	Marquee
	Math
	Menu
	MenuItem
	MError
	Meta
	Meter
	MGlyph
	MI
	MN
	MO
	MS
	MText
	Nav
	NoBr
	NoEmbed
	NoFrames
	NoScript
	Object
	OL
	OptGroup
	Option
	Output
	P
	Param
	Picture
	PlainText
	Pre
	Progress
	Q
	RB
	RP
	RT
	RTC
	Ruby
	S
	Samp
	Script
	Section
	Select
	Slot
	Small
	Source
	Span
	Strike
	Strong
	Style
	Sub
	Summary
	Sup
	SVG
	Table
	TBody
	TD
	Template
	TextArea
	TFoot
	TH
	THead
	Time
	Title
	TR
	Track
	TT
	U
	UL
	Var
	Video
	WBR
	XMP

	numIDs
)

var table = [numIDs]entry{
	Undefined: {"-undef", "_UNDEF"},
	Text:      {"-text", "_TEXT"},
	Comment:   {"!--", "_COMMENT"},
	Doctype:   {"!DOCTYPE", "_DOCTYPE"},
	EndOfFile: {"-end-of-file", "_END_OF_FILE"},

	A:              {"a", "A"},
	Abbr:           {"abbr", "ABBR"},
	Acronym:        {"acronym", "ACRONYM"},
	Address:        {"address", "ADDRESS"},
	AnnotationXML:  {"annotation-xml", "ANNOTATION_XML"},
	Applet:         {"applet", "APPLET"},
	Area:           {"area", "AREA"},
	Article:        {"article", "ARTICLE"},
	Aside:          {"aside", "ASIDE"},
	Audio:          {"audio", "AUDIO"},
	B:              {"b", "B"},
	Base:           {"base", "BASE"},
	BaseFont:       {"basefont", "BASEFONT"},
	BDI:            {"bdi", "BDI"},
	BDO:            {"bdo", "BDO"},
	BgSound:        {"bgsound", "BGSOUND"},
	Big:            {"big", "BIG"},
	Blink:          {"blink", "BLINK"},
	BlockQuote:     {"blockquote", "BLOCKQUOTE"},
	Body:           {"body", "BODY"},
	BR:             {"br", "BR"},
	Button:         {"button", "BUTTON"},
	Canvas:         {"canvas", "CANVAS"},
	Caption:        {"caption", "CAPTION"},
	Center:         {"center", "CENTER"},
	Cite:           {"cite", "CITE"},
	Code:           {"code", "CODE"},
	Col:            {"col", "COL"},
	ColGroup:       {"colgroup", "COLGROUP"},
	Command:        {"command", "COMMAND"},
	CommentElement: {"comment", "COMMENT"},
	Data:           {"data", "DATA"},
	DataList:       {"datalist", "DATALIST"},
	DD:             {"dd", "DD"},
	Del:            {"del", "DEL"},
	Desc:           {"desc", "DESC"},
	Details:        {"details", "DETAILS"},
	Dfn:            {"dfn", "DFN"},
	Dialog:         {"dialog", "DIALOG"},
	Dir:            {"dir", "DIR"},
	Div:            {"div", "DIV"},
	DL:             {"dl", "DL"},
	DT:             {"dt", "DT"},
	Em:             {"em", "EM"},
	Embed:          {"embed", "EMBED"},
	FieldSet:       {"fieldset", "FIELDSET"},
	FigCaption:     {"figcaption", "FIGCAPTION"},
	Figure:         {"figure", "FIGURE"},
	Font:           {"font", "FONT"},
	Footer:         {"footer", "FOOTER"},
	ForeignObject:  {"foreignObject", "FOREIGNOBJECT"},
	Form:           {"form", "FORM"},
	Frame:          {"frame", "FRAME"},
	FrameSet:       {"frameset", "FRAMESET"},
	H1:             {"h1", "H1"},
	H2:             {"h2", "H2"},
	H3:             {"h3", "H3"},
	H4:             {"h4", "H4"},
	H5:             {"h5", "H5"},
	H6:             {"h6", "H6"},
	Head:           {"head", "HEAD"},
	Header:         {"header", "HEADER"},
	HGroup:         {"hgroup", "HGROUP"},
	HR:             {"hr", "HR"},
	HTML:           {"html", "HTML"},
	I:              {"i", "I"},
	IFrame:         {"iframe", "IFRAME"},
	Image:          {"image", "IMAGE"},
	Img:            {"img", "IMG"},
	Input:          {"input", "INPUT"},
	Ins:            {"ins", "INS"},
	IsIndex:        {"isindex", "ISINDEX"},
	KBD:            {"kbd", "KBD"},
	KeyGen:         {"keygen", "KEYGEN"},
	Label:          {"label", "LABEL"},
	Legend:         {"legend", "LEGEND"},
	LI:             {"li", "LI"},
	Link:           {"link", "LINK"},
	Listing:        {"listing", "LISTING"},
	Main:           {"main", "MAIN"},
	MAlignMark:     {"malignmark", "MALIGNMARK"},
	Map:            {"map", "MAP"},
	Mark:           {"mark", "MARK"},
	Marquee:        {"marquee", "MARQUEE"},
	Math:           {"math", "MATH"},
	Menu:           {"menu", "MENU"},
	MenuItem:       {"menuitem", "MENUITEM"},
	MError:         {"merror", "MERROR"},
	Meta:           {"meta", "META"},
	Meter:          {"meter", "METER"},
	MGlyph:         {"mglyph", "MGLYPH"},
	MI:             {"mi", "MI"},
	MN:             {"mn", "MN"},
	MO:             {"mo", "MO"},
	MS:             {"ms", "MS"},
	MText:          {"mtext", "MTEXT"},
	Nav:            {"nav", "NAV"},
	NoBr:           {"nobr", "NOBR"},
	NoEmbed:        {"noembed", "NOEMBED"},
	NoFrames:       {"noframes", "NOFRAMES"},
	NoScript:       {"noscript", "NOSCRIPT"},
	Object:         {"object", "OBJECT"},
	OL:             {"ol", "OL"},
	OptGroup:       {"optgroup", "OPTGROUP"},
	Option:         {"option", "OPTION"},
	Output:         {"output", "OUTPUT"},
	P:              {"p", "P"},
	Param:          {"param", "PARAM"},
	Picture:        {"picture", "PICTURE"},
	PlainText:      {"plaintext", "PLAINTEXT"},
	Pre:            {"pre", "PRE"},
	Progress:       {"progress", "PROGRESS"},
	Q:              {"q", "Q"},
	RB:             {"rb", "RB"},
	RP:             {"rp", "RP"},
	RT:             {"rt", "RT"},
	RTC:            {"rtc", "RTC"},
	Ruby:           {"ruby", "RUBY"},
	S:              {"s", "S"},
	Samp:           {"samp", "SAMP"},
	Script:         {"script", "SCRIPT"},
	Section:        {"section", "SECTION"},
	Select:         {"select", "SELECT"},
	Slot:           {"slot", "SLOT"},
	Small:          {"small", "SMALL"},
	Source:         {"source", "SOURCE"},
	Span:           {"span", "SPAN"},
	Strike:         {"strike", "STRIKE"},
	Strong:         {"strong", "STRONG"},
	Style:          {"style", "STYLE"},
	Sub:            {"sub", "SUB"},
	Summary:        {"summary", "SUMMARY"},
	Sup:            {"sup", "SUP"},
	SVG:            {"svg", "SVG"},
	Table:          {"table", "TABLE"},
	TBody:          {"tbody", "TBODY"},
	TD:             {"td", "TD"},
	Template:       {"template", "TEMPLATE"},
	TextArea:       {"textarea", "TEXTAREA"},
	TFoot:          {"tfoot", "TFOOT"},
	TH:             {"th", "TH"},
	THead:          {"thead", "THEAD"},
	Time:           {"time", "TIME"},
	Title:          {"title", "TITLE"},
	TR:             {"tr", "TR"},
	Track:          {"track", "TRACK"},
	TT:             {"tt", "TT"},
	U:              {"u", "U"},
	UL:             {"ul", "UL"},
	Var:            {"var", "VAR"},
	Video:          {"video", "VIDEO"},
	WBR:            {"wbr", "WBR"},
	XMP:            {"xmp", "XMP"},
}
