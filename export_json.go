package bookkeeper

// This file renders the JSON document format. Keys are emitted in a
// fixed order through the streaming JSONWriter; consumers treat that
// order as significant, and no key is ever emitted twice for the same
// object.

// CategoriesJSON writes the "CATEGORIES" key mapped to a flat array of
// strings: each top-level category name immediately followed by each of
// its subcategory full names, in enumeration order. The writer must be
// positioned inside an open object.
func (e *Exporter) CategoriesJSON(w JSONWriter) {
	w.Key("CATEGORIES")
	w.StartArray()
	for _, category := range e.Categories.Categories() {
		w.String(category.Name)
		for _, sub := range e.Categories.Subcategories(category.ID) {
			w.String(subcategoryFullName(category, sub))
		}
	}
	w.EndArray()
}

// TransactionJSON writes one transaction as a JSON object: the view's
// raw scalar fields, then account and currency names where they
// resolve, the payee (non-transfer) or destination account (transfer),
// the category name or the per-split category array, and finally the
// optional ATTACHMENTS and CUSTOM_FIELDS arrays.
func (e *Exporter) TransactionJSON(w JSONWriter, v *TransactionView) {
	w.StartObject()
	v.WriteFields(w)

	if accIn := e.Accounts.Account(v.AccountID); accIn != nil {
		w.Key("ACCOUNT_NAME")
		w.String(accIn.Name)
		if curr := e.Currencies.Currency(accIn.CurrencyID); curr != nil {
			w.Key("ACCOUNT_CURRENCY")
			w.String(curr.Symbol)
		}
	}

	if v.IsTransfer() {
		if accTo := e.Accounts.Account(v.ToAccountID); accTo != nil {
			w.Key("TO_ACCOUNT_NAME")
			w.String(accTo.Name)
			if curr := e.Currencies.Currency(accTo.CurrencyID); curr != nil {
				w.Key("TO_ACCOUNT_CURRENCY")
				w.String(curr.Symbol)
			}
		}
	} else {
		w.Key("PAYEE_NAME")
		w.String(v.Payee)
	}

	if len(v.Splits) == 0 {
		w.Key("CATEGORY_NAME")
		w.String(v.CategoryName)
	} else {
		w.Key("CATEGORIES")
		w.StartArray()
		for _, s := range v.Splits {
			w.StartObject()
			w.Key("CATEGID")
			w.Int(s.CategoryID)
			w.Key("SUBCATEGID")
			w.Int(s.SubcategoryID)
			w.Key("CATEGORY_NAME")
			w.String(e.Categories.FullName(s.CategoryID, s.SubcategoryID))
			w.Key("AMOUNT")
			w.Double(splitAmount(v, s).InexactFloat64())
			w.EndObject()
		}
		w.EndArray()
	}

	if e.Attachments != nil {
		if attachments := e.Attachments.Attachments(RefTypeTransaction, v.ID); len(attachments) > 0 {
			w.Key("ATTACHMENTS")
			w.StartArray()
			for _, a := range attachments {
				w.StartObject()
				w.Key("FILENAME")
				w.String(a.Filename)
				w.Key("DESCRIPTION")
				w.String(a.Description)
				w.Key("PATH")
				w.String(a.Path)
				w.EndObject()
			}
			w.EndArray()
		}
	}

	if e.Fields != nil {
		if values := e.Fields.FieldValues(v.ID); len(values) > 0 {
			w.Key("CUSTOM_FIELDS")
			w.StartArray()
			for _, value := range values {
				for _, def := range e.Fields.FieldDefs(RefTypeTransaction, value.FieldID) {
					w.StartObject()
					w.Key("DESCRIPTION")
					w.String(def.Description)
					w.Key("CONTENT")
					w.String(value.Content)
					w.Key("TYPE")
					w.String(def.Type)
					w.Key("PROPERTIES")
					// an already-serialized fragment, spliced without re-encoding
					props := def.Properties
					if props == "" {
						props = "{}"
					}
					w.RawValue(props)
					w.EndObject()
				}
			}
			w.EndArray()
		}
	}

	w.EndObject()
}
