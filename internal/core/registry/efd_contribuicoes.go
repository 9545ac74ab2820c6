package registry

// efdContribuicoes lists the record layouts of the EFD-Contribuições ledger in
// file order. Field names follow the official layout tables.
var efdContribuicoes = []Schema{
	{Code: "0000", Fields: []string{"REG", "COD_VER", "TIPO_ESCRIT", "IND_SIT_ESP",
		"NUM_REC_ANTERIOR", "DT_INI", "DT_FIN", "NOME", "CNPJ", "UF", "COD_MUN", "SUFRAMA",
		"IND_NAT_PJ", "IND_ATIV",
	}},
	{Code: "0001", Fields: []string{"REG", "IND_MOV"}},
	{Code: "0100", Fields: []string{"REG", "NOME", "CPF", "CRC", "CNPJ", "CEP", "END", "NUM",
		"COMPL", "BAIRRO", "FONE", "FAX", "EMAIL", "COD_MUN",
	}},
	{Code: "0110", Fields: []string{"REG", "COD_INC_TRIB", "IND_APRO_CRED", "COD_TIPO_CONT",
		"IND_REG_CUM",
	}},
	{Code: "0111", Fields: []string{"REG", "REC_BRU_NCUM_TRIB_MI", "REC_BRU_NCUM_NT_MI",
		"REC_BRU_NCUM_EXP", "REC_BRU_CUM", "REC_BRU_TOTAL",
	}},
	{Code: "0120", Fields: []string{"REG", "MES_DISPENSA", "INF_COMP"}},
	{Code: "0140", Fields: []string{"REG", "COD_EST", "NOME", "CNPJ", "UF", "IE", "COD_MUN", "IM",
		"SUFRAMA",
	}},
	{Code: "0145", Fields: []string{"REG", "COD_INC_TRIB", "VL_REC_TOT", "VL_REC_ATIV",
		"VL_REC_DEMAIS_ATIV", "INFO_COMPL",
	}},
	{Code: "0150", Fields: []string{"REG", "COD_PART", "NOME", "COD_PAIS", "CNPJ", "CPF", "IE",
		"COD_MUN", "SUFRAMA", "END", "NUM", "COMPL", "BAIRRO",
	}},
	{Code: "0190", Fields: []string{"REG", "UNID", "DESCR"}},
	{Code: "0200", Fields: []string{"REG", "COD_ITEM", "DESCR_ITEM", "COD_BARRA", "COD_ANT_ITEM",
		"UNID_INV", "TIPO_ITEM", "COD_NCM", "EX_IPI", "COD_GEN", "COD_LST", "ALIQ_ICMS",
	}},
	{Code: "0205", Fields: []string{"REG", "DESCR_ANT_ITEM", "DT_INI", "DT_FIM", "COD_ANT_ITEM"}},
	{Code: "0206", Fields: []string{"REG", "COD_COMB"}},
	{Code: "0208", Fields: []string{"REG", "COD_TAB", "COD_GRU", "MARCA_COM"}},
	{Code: "0400", Fields: []string{"REG", "COD_NAT", "DESCR_NAT"}},
	{Code: "0450", Fields: []string{"REG", "COD_INF", "TXT"}},
	{Code: "0500", Fields: []string{"REG", "DT_ALT", "COD_NAT_CC", "IND_CTA", "NÍVEL", "COD_CTA",
		"NOME_CTA", "COD_CTA_REF", "CNPJ_EST",
	}},
	{Code: "0600", Fields: []string{"REG", "DT_ALT", "COD_CCUS", "CCUS"}},
	{Code: "0990", Fields: []string{"REG", "QTD_LIN_0"}},
	{Code: "A001", Fields: []string{"REG", "IND_MOV"}},
	{Code: "A010", Fields: []string{"REG", "CNPJ"}},
	{Code: "A100", Fields: []string{"REG", "IND_OPER", "IND_EMIT", "COD_PART", "COD_SIT", "SER",
		"SUB", "NUM_DOC", "CHV_NFSE", "DT_DOC", "DT_EXE_SERV", "VL_DOC", "IND_PGTO", "VL_DESC",
		"VL_BC_PIS", "VL_PIS", "VL_BC_COFINS", "VL_COFINS", "VL_PIS_RET", "VL_COFINS_RET", "VL_ISS",
	}},
	{Code: "A110", Fields: []string{"REG", "COD_INF", "TXT_COMPL"}},
	{Code: "A111", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "A120", Fields: []string{"REG", "VL_TOT_SERV", "VL_BC_PIS", "VL_PIS_IMP", "DT_PAG_PIS",
		"VL_BC_COFINS", "VL_COFINS_IMP", "DT_PAG_COFINS", "LOC_EXE_SERV",
	}},
	{Code: "A170", Fields: []string{"REG", "NUM_ITEM", "COD_ITEM", "DESCR_COMPL", "VL_ITEM",
		"VL_DESC", "NAT_BC_CRED", "IND_ORIG_CRED", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS",
		"CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA", "COD_CCUS",
	}},
	{Code: "A990", Fields: []string{"REG", "QTD_LIN_A"}},
	{Code: "C001", Fields: []string{"REG", "IND_MOV"}},
	{Code: "C010", Fields: []string{"REG", "CNPJ", "IND_ESCRI"}},
	{Code: "C100", Fields: []string{"REG", "IND_OPER", "IND_EMIT", "COD_PART", "COD_MOD", "COD_SIT",
		"SER", "NUM_DOC", "CHV_NFE", "DT_DOC", "DT_E_S", "VL_DOC", "IND_PGTO", "VL_DESC", "VL_ABAT_NT",
		"VL_MERC", "IND_FRT", "VL_FRT", "VL_SEG", "VL_OUT_DA", "VL_BC_ICMS", "VL_ICMS",
		"VL_BC_ICMS_ST", "VL_ICMS_ST", "VL_IPI", "VL_PIS", "VL_COFINS", "VL_PIS_ST", "VL_COFINS_ST",
	}},
	{Code: "C110", Fields: []string{"REG", "COD_INF", "TXT_COMPL"}},
	{Code: "C111", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "C120", Fields: []string{"REG", "COD_DOC_IMP", "NUM_DOC_IMP", "VL_PIS_IMP",
		"VL_COFINS_IMP", "NUM_ACDRAW",
	}},
	{Code: "C170", Fields: []string{"REG", "NUM_ITEM", "COD_ITEM", "DESCR_COMPL", "QTD", "UNID",
		"VL_ITEM", "VL_DESC", "IND_MOV", "CST_ICMS", "CFOP", "COD_NAT", "VL_BC_ICMS", "ALIQ_ICMS",
		"VL_ICMS", "VL_BC_ICMS_ST", "ALIQ_ST", "VL_ICMS_ST", "IND_APUR", "CST_IPI", "COD_ENQ",
		"VL_BC_IPI", "ALIQ_IPI", "VL_IPI", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS",
		"ALIQ_PIS_QUANT", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS",
		"ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA",
	}},
	{Code: "C175", Fields: []string{"REG", "CFOP", "VL_OPR", "VL_DESC", "CST_PIS", "VL_BC_PIS",
		"ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "CST_COFINS", "VL_BC_COFINS",
		"ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA", "INFO_COMPL",
	}},
	{Code: "C180", Fields: []string{"REG", "COD_MOD", "DT_DOC_INI", "DT_DOC_FIN", "COD_ITEM",
		"COD_NCM", "EX_IPI", "VL_TOT_ITEM",
	}},
	{Code: "C181", Fields: []string{"REG", "CST_PIS", "CFOP", "VL_ITEM", "VL_DESC", "VL_BC_PIS",
		"ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "COD_CTA",
	}},
	{Code: "C185", Fields: []string{"REG", "CST_COFINS", "CFOP", "VL_ITEM", "VL_DESC",
		"VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA",
	}},
	{Code: "C188", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "C190", Fields: []string{"REG", "COD_MOD", "DT_REF_INI", "DT_REF_FIN", "COD_ITEM",
		"COD_NCM", "EX_IPI", "VL_TOT_ITEM",
	}},
	{Code: "C191", Fields: []string{"REG", "CNPJ_CPF_PART", "CST_PIS", "CFOP", "VL_ITEM", "VL_DESC",
		"VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "COD_CTA",
	}},
	{Code: "C195", Fields: []string{"REG", "CNPJ_CPF_PART", "CST_COFINS", "CFOP", "VL_ITEM",
		"VL_DESC", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS",
		"COD_CTA",
	}},
	{Code: "C198", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "C199", Fields: []string{"REG", "COD_DOC_IMP", "NUM_DOC_IMP", "VL_PIS_IMP",
		"VL_COFINS_IMP", "NUM_ACDRAW",
	}},
	{Code: "C380", Fields: []string{"REG", "COD_MOD", "DT_DOC_INI", "DT_DOC_FIN", "NUM_DOC_INI",
		"NUM_DOC_FIN", "VL_DOC", "VL_DOC_CANC",
	}},
	{Code: "C381", Fields: []string{"REG", "CST_PIS", "COD_ITEM", "VL_ITEM", "VL_BC_PIS",
		"ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "COD_CTA",
	}},
	{Code: "C385", Fields: []string{"REG", "CST_COFINS", "COD_ITEM", "VL_ITEM", "VL_BC_COFINS",
		"ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA",
	}},
	{Code: "C395", Fields: []string{"REG", "COD_MOD", "COD_PART", "SER", "SUB_SER", "NUM_DOC",
		"DT_DOC", "VL_DOC",
	}},
	{Code: "C396", Fields: []string{"REG", "COD_ITEM", "VL_ITEM", "VL_DESC", "NAT_BC_CRED",
		"CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS",
		"VL_COFINS", "COD_CTA",
	}},
	{Code: "C400", Fields: []string{"REG", "COD_MOD", "ECF_MOD", "ECF_FAB", "ECF_CX"}},
	{Code: "C405", Fields: []string{"REG", "DT_DOC", "CRO", "CRZ", "NUM_COO_FIN", "GT_FIN",
		"VL_BRT",
	}},
	{Code: "C481", Fields: []string{"REG", "CST_PIS", "VL_ITEM", "VL_BC_PIS", "ALIQ_PIS",
		"QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "COD_ITEM", "COD_CTA",
	}},
	{Code: "C485", Fields: []string{"REG", "CST_COFINS", "VL_ITEM", "VL_BC_COFINS", "ALIQ_COFINS",
		"QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_ITEM", "COD_CTA",
	}},
	{Code: "C489", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "C490", Fields: []string{"REG", "DT_DOC_INI", "DT_DOC_FIN", "COD_MOD"}},
	{Code: "C491", Fields: []string{"REG", "COD_ITEM", "CST_PIS", "CFOP", "VL_ITEM", "VL_BC_PIS",
		"ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "COD_CTA",
	}},
	{Code: "C495", Fields: []string{"REG", "COD_ITEM", "CST_COFINS", "CFOP", "VL_ITEM",
		"VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA",
	}},
	{Code: "C890", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "C990", Fields: []string{"REG", "QTD_LIN_C"}},
	{Code: "D001", Fields: []string{"REG", "IND_MOV"}},
	{Code: "D010", Fields: []string{"REG", "CNPJ"}},
	{Code: "D100", Fields: []string{"REG", "IND_OPER", "IND_EMIT", "COD_PART", "COD_MOD", "COD_SIT",
		"SER", "SUB", "NUM_DOC", "CHV_CTE", "DT_DOC", "DT_A_P", "TP_CT-e", "CHV_CTE_REF", "VL_DOC",
		"VL_DESC", "IND_FRT", "VL_SERV", "VL_BC_ICMS", "VL_ICMS", "VL_NT", "COD_INF", "COD_CTA",
	}},
	{Code: "D101", Fields: []string{"REG", "IND_NAT_FRT", "VL_ITEM", "CST_PIS", "NAT_BC_CRED",
		"VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "COD_CTA",
	}},
	{Code: "D105", Fields: []string{"REG", "IND_NAT_FRT", "VL_ITEM", "CST_COFINS", "NAT_BC_CRED",
		"VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA",
	}},
	{Code: "D111", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "D200", Fields: []string{"REG", "COD_MOD", "COD_SIT", "SER", "SUB", "NUM_DOC_INI",
		"NUM_DOC_FIN", "CFOP", "DT_REF", "VL_DOC", "VL_DESC",
	}},
	{Code: "D201", Fields: []string{"REG", "CST_PIS", "VL_ITEM", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS",
		"COD_CTA",
	}},
	{Code: "D205", Fields: []string{"REG", "CST_COFINS", "VL_ITEM", "VL_BC_COFINS", "ALIQ_COFINS",
		"VL_COFINS", "COD_CTA",
	}},
	{Code: "D209", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "D300", Fields: []string{"REG", "COD_MOD", "SER", "SUB", "NUM_DOC_INI", "NUM_DOC_FIN",
		"CFOP", "DT_REF", "VL_DOC", "VL_DESC", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS",
		"CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA",
	}},
	{Code: "D309", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "D350", Fields: []string{"REG", "COD_MOD", "ECF_MOD", "ECF_FAB", "DT_DOC", "CRO", "CRZ",
		"NUM_COO_FIN", "GT_FIN", "VL_BRT", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS",
		"ALIQ_PIS_QUANT", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS",
		"ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA",
	}},
	{Code: "D359", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "D500", Fields: []string{"REG", "IND_OPER", "IND_EMIT", "COD_PART", "COD_MOD", "COD_SIT",
		"SER", "SUB", "NUM_DOC", "DT_DOC", "DT_A_P", "VL_DOC", "VL_DESC", "VL_SERV", "VL_SERV_NT",
		"VL_TERC", "VL_DA", "VL_BC_ICMS", "VL_ICMS", "COD_INF", "VL_PIS", "VL_COFINS",
	}},
	{Code: "D501", Fields: []string{"REG", "CST_PIS", "VL_ITEM", "NAT_BC_CRED", "VL_BC_PIS",
		"ALIQ_PIS", "VL_PIS", "COD_CTA",
	}},
	{Code: "D505", Fields: []string{"REG", "CST_COFINS", "VL_ITEM", "NAT_BC_CRED", "VL_BC_COFINS",
		"ALIQ_COFINS", "VL_COFINS", "COD_CTA",
	}},
	{Code: "D509", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "D600", Fields: []string{"REG", "COD_MOD", "COD_MUN", "SER", "SUB", "IND_REC",
		"QTD_CONS", "DT_DOC_INI", "DT_DOC_FIN", "VL_DOC", "VL_DESC", "VL_SERV", "VL_SERV_NT",
		"VL_TERC", "VL_DA", "VL_BC_ICMS", "VL_ICMS", "VL_PIS", "VL_COFINS",
	}},
	{Code: "D601", Fields: []string{"REG", "COD_CLASS", "VL_ITEM", "VL_DESC", "CST_PIS",
		"VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "COD_CTA",
	}},
	{Code: "D605", Fields: []string{"REG", "COD_CLASS", "VL_ITEM", "VL_DESC", "CST_COFINS",
		"VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA",
	}},
	{Code: "D609", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "D990", Fields: []string{"REG", "QTD_LIN_D"}},
	{Code: "F001", Fields: []string{"REG", "IND_MOV"}},
	{Code: "F010", Fields: []string{"REG", "CNPJ"}},
	{Code: "F100", Fields: []string{"REG", "IND_OPER", "COD_PART", "COD_ITEM", "DT_OPER", "VL_OPER",
		"CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS",
		"VL_COFINS", "NAT_BC_CRED", "IND_ORIG_CRED", "COD_CTA", "COD_CCUS", "DESC_DOC_OPER",
	}},
	{Code: "F111", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "F120", Fields: []string{"REG", "NAT_BC_CRED", "IDENT_BEM_IMOB", "IND_ORIG_CRED",
		"IND_UTIL_BEM_IMOB", "VL_OPER_DEP", "PARC_OPER_NAO_BC_CRED", "CST_PIS", "VL_BC_PIS",
		"ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA",
		"COD_CCUS", "DESC_BEM_IMOB",
	}},
	{Code: "F129", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "F130", Fields: []string{"REG", "NAT_BC_CRED", "IDENT_BEM_IMOB", "IND_ORIG_CRED",
		"IND_UTIL_BEM_IMOB", "MES_OPER_AQUIS", "VL_OPER_AQUIS", "PARC_OPER_NAO_BC_CRED", "VL_BC_CRED",
		"IND_NR_PARC", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS",
		"ALIQ_COFINS", "VL_COFINS", "COD_CTA", "COD_CCUS", "DESC_BEM_IMOB",
	}},
	{Code: "F139", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "F150", Fields: []string{"REG", "NAT_BC_CRED", "VL_TOT_EST", "EST_IMP", "VL_BC_EST",
		"VL_BC_MEN_EST", "CST_PIS", "ALIQ_PIS", "VL_CRED_PIS", "CST_COFINS", "ALIQ_COFINS",
		"VL_CRED_COFINS", "DESC_EST", "COD_CTA",
	}},
	{Code: "F200", Fields: []string{"REG", "IND_OPER", "UNID_IMOB", "IDENT_EMP", "DESC_UNID_IMOB",
		"NUM_CONT", "CPF_CNPJ_ADQU", "DT_OPER", "VL_TOT_VEND", "VL_REC_ACUM", "VL_TOT_REC", "CST_PIS",
		"VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS",
		"PERC_REC_RECEB", "IND_NAT_EMP", "INF_COMP",
	}},
	{Code: "F205", Fields: []string{"REG", "VL_CUS_INC_ACUM_ANT", "VL_CUS_INC_PER_ESC",
		"VL_CUS_INC_ACUM", "VL_EXC_BC_CUS_INC_ACUM", "VL_BC_CUS_INC", "CST_PIS", "ALIQ_PIS",
		"VL_CRED_PIS_ACUM", "VL_CRED_PIS_DESC_ANT", "VL_CRED_PIS_DESC", "VL_CRED_PIS_DESC_FUT",
		"CST_COFINS", "ALIQ_COFINS", "VL_CRED_COFINS_ACUM", "VL_CRED_COFINS_DESC_ANT",
		"VL_CRED_COFINS_DESC", "VL_CRED_COFINS_DESC_FUT",
	}},
	{Code: "F210", Fields: []string{"REG", "VL_CUS_ORC", "VL_EXC", "VL_CUS_ORC_AJU", "VL_BC_CRED",
		"CST_PIS", "ALIQ_PIS", "VL_CRED_PIS_UTIL", "CST_COFINS", "ALIQ_COFINS", "VL_CRED_COFINS_UTIL",
	}},
	{Code: "F211", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "F500", Fields: []string{"REG", "VL_REC_CAIXA", "CST_PIS", "VL_DESC_PIS", "VL_BC_PIS",
		"ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_DESC_COFINS", "VL_BC_COFINS", "ALIQ_COFINS",
		"VL_COFINS", "COD_MOD", "CFOP", "COD_CTA", "INFO_COMPL",
	}},
	{Code: "F509", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "F510", Fields: []string{"REG", "VL_REC_CAIXA", "CST_PIS", "VL_DESC_PIS", "QUANT_BC_PIS",
		"ALIQ_PIS_QUANT", "VL_PIS", "CST_COFINS", "VL_DESC_COFINS", "QUANT_BC_COFINS",
		"ALIQ_COFINS_QUANT", "VL_COFINS", "COD_MOD", "CFOP", "COD_CTA", "INFO_COMPL",
	}},
	{Code: "F519", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "F525", Fields: []string{"REG", "VL_REC", "IND_REC", "CNPJ_CPF", "NUM_DOC", "COD_ITEM",
		"VL_REC_DET", "CST_PIS", "CST_COFINS", "INFO_COMPL", "COD_CTA",
	}},
	{Code: "F550", Fields: []string{"REG", "VL_REC_COMP", "CST_PIS", "VL_DESC_PIS", "VL_BC_PIS",
		"ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_DESC_COFINS", "VL_BC_COFINS", "ALIQ_COFINS",
		"VL_COFINS", "COD_MOD", "CFOP", "COD_CTA", "INFO_COMPL",
	}},
	{Code: "F559", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "F560", Fields: []string{"REG", "VL_REC_COMP", "CST_PIS", "VL_DESC_PIS", "QUANT_BC_PIS",
		"ALIQ_PIS_QUANT", "VL_PIS", "CST_COFINS", "VL_DESC_COFINS", "QUANT_BC_COFINS",
		"ALIQ_COFINS_QUANT", "VL_COFINS", "COD_MOD", "CFOP", "COD_CTA", "INFO_COMPL",
	}},
	{Code: "F569", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "F600", Fields: []string{"REG", "IND_NAT_RET", "DT_RET", "VL_BC_RET", "VL_RET",
		"COD_REC", "IND_NAT_REC", "CNPJ", "VL_RET_PIS", "VL_RET_COFINS", "IND_DEC",
	}},
	{Code: "F700", Fields: []string{"REG", "IND_ORI_DED", "IND_NAT_DED", "VL_DED_PIS",
		"VL_DED_COFINS", "VL_BC_OPER", "CNPJ", "INF_COMP",
	}},
	{Code: "F800", Fields: []string{"REG", "IND_NAT_EVEN", "DT_EVEN", "CNPJ_SUCED", "PA_CONT_CRED",
		"COD_CRED", "VL_CRED_PIS", "VL_CRED_COFINS", "PER_CRED_CIS",
	}},
	{Code: "F990", Fields: []string{"REG", "QTD_LIN_F"}},
	{Code: "I001", Fields: []string{"REG", "IND_MOV"}},
	{Code: "I010", Fields: []string{"REG", "CNPJ", "IND_ATIV", "INFO_COMPL"}},
	{Code: "I100", Fields: []string{"REG", "VL_REC", "CST_PIS_COFINS", "VL_TOT_DED_GER",
		"VL_TOT_DED_ESP", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "VL_BC_COFINS", "ALIQ_COFINS",
		"VL_COFINS", "INFO_COMPL",
	}},
	{Code: "I199", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "I200", Fields: []string{"REG", "NUM_CAMPO", "COD_DET", "DET_VALOR", "COD_CTA",
		"INFO_COMPL",
	}},
	{Code: "I299", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "I300", Fields: []string{"REG", "COD_COMP", "DET_VALOR", "COD_CTA", "INFO_COMPL"}},
	{Code: "I399", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "I990", Fields: []string{"REG", "QTD_LIN_I"}},
	{Code: "M001", Fields: []string{"REG", "IND_MOV"}},
	{Code: "M100", Fields: []string{"REG", "COD_CRED", "IND_CRED_ORI", "VL_BC_PIS", "ALIQ_PIS",
		"QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_CRED", "VL_AJUS_ACRES", "VL_AJUS_REDUC", "VL_CRED_DIF",
		"VL_CRED_DISP", "IND_DESC_CRED", "VL_CRED_DESC", "SLD_CRED",
	}},
	{Code: "M105", Fields: []string{"REG", "NAT_BC_CRED", "CST_PIS", "VL_BC_PIS_TOT",
		"VL_BC_PIS_CUM", "VL_BC_PIS_NC", "VL_BC_PIS", "QUANT_BC_PIS_TOT", "QUANT_BC_PIS", "DESC_CRED",
	}},
	{Code: "M110", Fields: []string{"REG", "IND_AJ", "VL_AJ", "COD_AJ", "NUM_DOC", "DESCR_AJ",
		"DT_REF",
	}},
	{Code: "M115", Fields: []string{"REG", "DET_VALOR_AJ", "CST_PIS", "DET_BC_CRED", "DET_ALIQ",
		"DT_OPER_AJ", "DESC_AJ", "COD_CTA", "INFO_COMPL",
	}},
	{Code: "M200", Fields: []string{"REG", "VL_TOT_CONT_NC_PER", "VL_TOT_CRED_DESC",
		"VL_TOT_CRED_DESC_ANT", "VL_TOT_CONT_NC_DEV", "VL_RET_NC", "VL_OUT_DED_NC", "VL_CONT_NC_REC",
		"VL_TOT_CONT_CUM_PER", "VL_RET_CUM", "VL_OUT_DED_CUM", "VL_CONT_CUM_REC", "VL_TOT_CONT_REC",
	}},
	{Code: "M205", Fields: []string{"REG", "NUM_CAMPO", "COD_REC", "VL_DEBITO"}},
	{Code: "M210", Fields: []string{"REG", "COD_CONT", "VL_REC_BRT", "VL_BC_CONT", "ALIQ_PIS",
		"QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_CONT_APUR", "VL_AJUS_ACRES", "VL_AJUS_REDUC",
		"VL_CONT_DIFER", "VL_CONT_DIFER_ANT", "VL_CONT_PER",
	}},
	{Code: "M250", Fields: []string{"REG", "IND_AJ_BC", "VL_AJ_BC", "COD_AJ_BC", "NUM_DOC",
		"DESCR_AJ_BC", "DT_REF", "COD_CTA", "CNPJ", "INFO_COMPL",
	}},
	{Code: "M211", Fields: []string{"REG", "IND_TIP_COOP", "VL_BC_CONT_ANT_EXC_COOP",
		"VL_EXC_COOP_GER", "VL_EXC_ESP_COOP", "VL_BC_CONT",
	}},
	{Code: "M215", Fields: []string{"REG", "IND_AJ_BC", "VL_AJ_BC", "COD_AJ_BC", "NUM_DOC",
		"DESCR_AJ_BC", "DT_REF", "COD_CTA", "CNPJ", "INFO_COMPL",
	}},
	{Code: "M220", Fields: []string{"REG", "IND_AJ", "VL_AJ", "COD_AJ", "NUM_DOC", "DESCR_AJ",
		"DT_REF",
	}},
	{Code: "M225", Fields: []string{"REG", "DET_VALOR_AJ", "CST_PIS", "DET_BC_CRED", "DET_ALIQ",
		"DT_OPER_AJ", "DESC_AJ", "COD_CTA", "INFO_COMPL",
	}},
	{Code: "M230", Fields: []string{"REG", "CNPJ", "VL_VEND", "VL_NAO_RECEB", "VL_CONT_DIF",
		"VL_CRED_DIF", "COD_CRED",
	}},
	{Code: "M300", Fields: []string{"REG", "COD_CONT", "VL_CONT_APUR_DIFER", "NAT_CRED_DESC",
		"VL_CRED_DESC_DIFER", "VL_CONT_DIFER_ANT", "PER_APUR", "DT_RECEB",
	}},
	{Code: "M350", Fields: []string{"REG", "VL_TOT_FOL", "VL_EXC_BC", "VL_TOT_BC", "ALIQ_PIS_FOL",
		"VL_TOT_CONT_FOL",
	}},
	{Code: "M400", Fields: []string{"REG", "CST_PIS", "VL_TOT_REC", "COD_CTA", "DESC_COMPL"}},
	{Code: "M410", Fields: []string{"REG", "NAT_REC", "VL_REC", "COD_CTA", "DESC_COMPL"}},
	{Code: "M500", Fields: []string{"REG", "COD_CRED", "IND_CRED_ORI", "VL_BC_COFINS",
		"ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_CRED", "VL_AJUS_ACRES",
		"VL_AJUS_REDUC", "VL_CRED_DIFER", "VL_CRED_DISP", "IND_DESC_CRED", "VL_CRED_DESC", "SLD_CRED",
	}},
	{Code: "M505", Fields: []string{"REG", "NAT_BC_CRED", "CST_COFINS", "VL_BC_COFINS_TOT",
		"VL_BC_COFINS_CUM", "VL_BC_COFINS_NC", "VL_BC_COFINS", "QUANT_BC_COFINS_TOT",
		"QUANT_BC_COFINS", "DESC_CRED",
	}},
	{Code: "M510", Fields: []string{"REG", "IND_AJ", "VL_AJ", "COD_AJ", "NUM_DOC", "DESCR_AJ",
		"DT_REF",
	}},
	{Code: "M515", Fields: []string{"REG", "DET_VALOR_AJ", "CST_COFINS", "DET_BC_CRED", "DET_ALIQ",
		"DT_OPER_AJ", "DESC_AJ", "COD_CTA", "INFO_COMPL",
	}},
	{Code: "M600", Fields: []string{"REG", "VL_TOT_CONT_NC_PER", "VL_TOT_CRED_DESC",
		"VL_TOT_CRED_DESC_ANT", "VL_TOT_CONT_NC_DEV", "VL_RET_NC", "VL_OUT_DED_NC", "VL_CONT_NC_REC",
		"VL_TOT_CONT_CUM_PER", "VL_RET_CUM", "VL_OUT_DED_CUM", "VL_CONT_CUM_REC", "VL_TOT_CONT_REC",
	}},
	{Code: "M605", Fields: []string{"REG", "NUM_CAMPO", "COD_REC", "VL_DEBITO"}},
	{Code: "M610", Fields: []string{"REG", "COD_CONT", "VL_REC_BRT", "VL_BC_CONT", "ALIQ_COFINS",
		"QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_CONT_APUR", "VL_AJUS_ACRES", "VL_AJUS_REDUC",
		"VL_CONT_DIFER", "VL_CONT_DIFER_ANT", "VL_CONT_PER",
	}},
	{Code: "M611", Fields: []string{"REG", "IND_TIP_COOP", "VL_BC_CONT_ANT_EXC_COOP",
		"VL_EXC_COOP_GER", "VL_EXC_ESP_COOP", "VL_BC_CONT",
	}},
	{Code: "M615", Fields: []string{"REG", "IND_AJ_BC", "VL_AJ_BC", "COD_AJ_BC", "NUM_DOC",
		"DESCR_AJ_BC", "DT_REF", "COD_CTA", "CNPJ", "INFO_COMPL",
	}},
	{Code: "M620", Fields: []string{"REG", "IND_AJ", "VL_AJ", "COD_AJ", "NUM_DOC", "DESCR_AJ",
		"DT_REF",
	}},
	{Code: "M625", Fields: []string{"REG", "DET_VALOR_AJ", "CST_COFINS", "DET_BC_CRED", "DET_ALIQ",
		"DT_OPER_AJ", "DESC_AJ", "COD_CTA", "INFO_COMPL",
	}},
	{Code: "M630", Fields: []string{"REG", "CNPJ", "VL_VEND", "VL_NAO_RECEB", "VL_CONT_DIF",
		"VL_CRED_DIF", "COD_CRED",
	}},
	{Code: "M700", Fields: []string{"REG", "COD_CONT", "VL_CONT_APUR_DIFER", "NAT_CRED_DESC",
		"VL_CRED_DESC_DIFER", "VL_CONT_DIFER_ANT", "PER_APUR", "DT_RECEB",
	}},
	{Code: "M800", Fields: []string{"REG", "CST_COFINS", "VL_TOT_REC", "COD_CTA", "DESC_COMPL"}},
	{Code: "M810", Fields: []string{"REG", "NAT_REC", "VL_REC", "COD_CTA", "DESC_COMPL"}},
	{Code: "M990", Fields: []string{"REG", "QTD_LIN_M"}},
	{Code: "P001", Fields: []string{"REG", "IND_MOV"}},
	{Code: "P010", Fields: []string{"REG", "CNPJ"}},
	{Code: "P100", Fields: []string{"REG", "DT_INI", "DT_FIN", "VL_REC_TOT_EST", "COD_ATIV_ECON",
		"VL_REC_ATIV_ESTAB", "VL_EXC", "VL_BC_CONT", "ALIQ_CONT", "VL_CONT_APU", "COD_CTA",
		"INFO_COMPL",
	}},
	{Code: "P110", Fields: []string{"REG", "NUM_CAMPO", "COD_DET", "DET_VALOR", "INF_COMPL"}},
	{Code: "P199", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "P200", Fields: []string{"REG", "PER_REF", "VL_TOT_CONT_APU", "VL_TOT_AJ_REDUC",
		"VL_TOT_AJ_ACRES", "VL_TOT_CONT_DEV", "COD_REC",
	}},
	{Code: "P210", Fields: []string{"REG", "IND_AJ", "VL_AJ", "COD_AJ", "NUM_DOC", "DESCR_AJ",
		"DT_REF",
	}},
	{Code: "P990", Fields: []string{"REG", "QTD_LIN_P"}},
	{Code: "1001", Fields: []string{"REG", "IND_MOV"}},
	{Code: "1010", Fields: []string{"REG", "NUM_PROC", "ID_SEC_JUD", "ID_VARA", "IND_NAT_ACAO",
		"DESC_DEC_JUD", "DT_SENT_JUD",
	}},
	{Code: "1020", Fields: []string{"REG", "NUM_PROC", "IND_NAT_ACAO", "DT_DEC_ADM"}},
	{Code: "1050", Fields: []string{"REG", "DT_REF", "IND_AJ_BC", "CNPJ", "VL_AJ_TOT",
		"VL_AJ_CST01", "VL_AJ_CST02", "VL_AJ_CST03", "VL_AJ_CST04", "VL_AJ_CST05", "VL_AJ_CST06",
		"VL_AJ_CST07", "VL_AJ_CST08", "VL_AJ_CST09", "VL_AJ_CST", "VL_AJ_CST49", "VL_AJ_CST99",
		"IND_APROP", "NUM_REC", "INFO_COMPL",
	}},
	{Code: "1100", Fields: []string{"REG", "PER_APU_CRED", "ORIG_CRED", "CNPJ_SUC", "COD_CRED",
		"VL_CRED_APU", "VL_CRED_EXT_APU", "VL_TOT_CRED_APU", "VL_CRED_DESC_PA_ANT",
		"VL_CRED_PER_PA_ANT", "VL_CRED_DCOMP_PA_ANT", "SD_CRED_DISP_EFD", "VL_CRED_DESC_EFD",
		"VL_CRED_PER_EFD", "VL_CRED_DCOMP_EFD", "VL_CRED_TRANS", "VL_CRED_OUT", "SLD_CRED_FIM",
	}},
	{Code: "1101", Fields: []string{"REG", "COD_PART", "COD_ITEM", "COD_MOD", "SER", "SUB_SER",
		"NUM_DOC", "DT_OPER", "CHV_NFE", "VL_OPER", "CFOP", "NAT_BC_CRED", "IND_ORIG_CRED", "CST_PIS",
		"VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "COD_CTA", "COD_CCUS", "DESC_COMPL", "PER_ESCRIT", "CNPJ",
	}},
	{Code: "1102", Fields: []string{"REG", "VL_CRED_PIS_TRIB_MI", "VL_CRED_PIS_NT_MI",
		"VL_CRED_PIS_EXP",
	}},
	{Code: "1200", Fields: []string{"REG", "PER_APUR_ANT", "NAT_CONT_REC", "VL_CONT_APUR",
		"VL_CRED_PIS_DESC", "VL_CONT_DEV", "VL_OUT_DED", "VL_CONT_EXT", "VL_MUL", "VL_JUR", "DT_RECOL",
	}},
	{Code: "1210", Fields: []string{"REG", "CNPJ", "CST_PIS", "COD_PART", "DT_OPER", "VL_OPER",
		"VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "COD_CTA", "DESC_COMPL",
	}},
	{Code: "1220", Fields: []string{"REG", "PER_APU_CRED", "ORIG_CRED", "COD_CRED", "VL_CRED"}},
	{Code: "1300", Fields: []string{"REG", "IND_NAT_RET", "PR_REC_RET", "VL_RET_APU", "VL_RET_DED",
		"VL_RET_PER", "VL_RET_DCOMP", "SLD_RET",
	}},
	{Code: "1500", Fields: []string{"REG", "PER_APU_CRED", "ORIG_CRED", "CNPJ_SUC", "COD_CRED",
		"VL_CRED_APU", "VL_CRED_EXT_APU", "VL_TOT_CRED_APU", "VL_CRED_DESC_PA_ANT",
		"VL_CRED_PER_PA_ANT", "VL_CRED_DCOMP_PA_ANT", "SD_CRED_DISP_EFD", "VL_CRED_DESC_EFD",
		"VL_CRED_PER_EFD", "VL_CRED_DCOMP_EFD", "VL_CRED_TRANS", "VL_CRED_OUT", "SLD_CRED_FIM",
	}},
	{Code: "1501", Fields: []string{"REG", "COD_PART", "COD_ITEM", "COD_MOD", "SER", "SUB_SER",
		"NUM_DOC", "DT_OPER", "CHV_NFE", "VL_OPER", "CFOP", "NAT_BC_CRED", "IND_ORIG_CRED",
		"CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA", "COD_CCUS", "DESC_COMPL",
		"PER_ESCRIT", "CNPJ",
	}},
	{Code: "1502", Fields: []string{"REG", "VL_CRED_COFINS_TRIB_MI", "VL_CRED_COFINS_NT_MI",
		"VL_CRED_COFINS_EXP",
	}},
	{Code: "1600", Fields: []string{"REG", "PER_APUR_ANT", "NAT_CONT_REC", "VL_CONT_APUR",
		"VL_CRED_COFINS_DESC", "VL_CONT_DEV", "VL_OUT_DED", "VL_CONT_EXT", "VL_MUL", "VL_JUR",
		"DT_RECOL",
	}},
	{Code: "1610", Fields: []string{"REG", "CNPJ", "CST_COFINS", "COD_PART", "DT_OPER", "VL_OPER",
		"VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA", "DESC_COMPL",
	}},
	{Code: "1620", Fields: []string{"REG", "PER_APU_CRED", "ORIG_CRED", "COD_CRED", "VL_CRED"}},
	{Code: "1700", Fields: []string{"REG", "IND_NAT_RET", "PR_REC_RET", "VL_RET_APU", "VL_RET_DED",
		"VL_RET_PER", "VL_RET_DCOMP", "SLD_RET",
	}},
	{Code: "1800", Fields: []string{"REG", "INC_IMOB", "REC_RECEB_RET", "REC_FIN_RET", "BC_RET",
		"ALIQ_RET", "VL_REC_UNI", "DT_REC_UNI", "COD_REC",
	}},
	{Code: "1809", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Code: "1900", Fields: []string{"REG", "CNPJ", "COD_MOD", "SER", "SUB_SER", "COD_SIT",
		"VL_TOT_REC", "QUANT_DOC", "CST_PIS", "CST_COFINS", "CFOP", "INF_COMPL", "COD_CTA",
	}},
	{Code: "1990", Fields: []string{"REG", "QTD_LIN_1"}},
	{Code: "9001", Fields: []string{"REG", "IND_MOV"}},
	{Code: "9900", Fields: []string{"REG", "REG_BLC", "QTD_REG_BLC"}},
	{Code: "9990", Fields: []string{"REG", "QTD_LIN_9"}},
	{Code: "9999", Fields: []string{"REG", "QTD_LIN"}},
}
