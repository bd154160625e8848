package merge

// Field paths written by Merge.
const (
	FieldDescription     = "_description"
	FieldTemplateVersion = "_template_version"

	FieldVendor           = "vendor.value"
	FieldVendorAccount    = "vendor_account"
	FieldMaterialType     = "material_type.value"
	FieldResourceMetadata = "resource_metadata"
	FieldTitle            = "resource_metadata.title"
	FieldAuthor           = "resource_metadata.author"
	FieldISBN             = "resource_metadata.isbn"
	FieldPublisher        = "resource_metadata.publisher"
	FieldPublicationYear  = "resource_metadata.publication_year"
	FieldSystemControl    = "resource_metadata.system_control_number"
	FieldPrice            = "price"
	FieldPriceSum         = "price.sum"
	FieldFundDistribution = "fund_distribution"
	FieldVendorReference  = "vendor_reference_number"
	FieldLocation         = "location"
	FieldReceivingNote    = "receiving_note"
	FieldNote             = "note"
	FieldInterestedUser   = "interested_user"
	FieldExpectedReceipt  = "expected_receipt_date"
	FieldReportingCode    = "reporting_code"
)

// ReserveNotePrefix is prepended to the reserve note entry of the note list.
const ReserveNotePrefix = "Reserve Note: "

// ExpectedReceiptLayout formats the expected receipt date.
const ExpectedReceiptLayout = "2006-01-02"
